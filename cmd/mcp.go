package cmd

import (
	"github.com/jayarege/Samsarademo/internal/mcp"
	"github.com/jayarege/Samsarademo/internal/samsara"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the sensor monitoring MCP server",
	Long:  `Launch an MCP server that allows AI agents to query sensor history and current readings via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		client := samsara.NewClient(cfg, debugLog)
		return mcp.StartMCPServer(rootCtx, cfg, client)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
