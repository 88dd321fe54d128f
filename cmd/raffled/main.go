package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
)

func init() {
	// Never expose debug output because of a misconfiguration
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "raffled",
		Short:         "Verifiable raffle draws backed by signed randomness",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newPurgeCmd(),
		newAbortCmd(),
		newVerifyCmd(),
		newTokenCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
