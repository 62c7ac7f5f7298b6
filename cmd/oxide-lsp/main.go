// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"oxide/internal/config"
	"oxide/internal/lsp"
)

const lsName = "oxide" // Name identifier for the language server

var (
	cfgFile string
	handler protocol.Handler // Protocol handler instance (wired up in run)
)

var rootCmd = &cobra.Command{
	Use:           "oxide-lsp",
	Short:         "Language server for oxide over stdio",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: $OXIDE_CONFIG or ./oxide.toml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commonlog.Configure(1, nil)
		commonlog.GetLogger("oxide.lsp").Errorf("%s", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	// stdout carries the protocol, so logging stays on stderr or the configured file
	commonlog.Configure(max(cfg.Log.Verbosity, 1), cfg.LogFile())
	log := commonlog.GetLogger("oxide.lsp")

	oxideHandler := lsp.NewOxideHandler(cfg.ParserOptions()...)

	handler = protocol.Handler{
		Initialize:                     oxideHandler.Initialize,
		Initialized:                    oxideHandler.Initialized,
		Shutdown:                       oxideHandler.Shutdown,
		SetTrace:                       oxideHandler.SetTrace,
		TextDocumentDidOpen:            oxideHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           oxideHandler.TextDocumentDidClose,
		TextDocumentDidChange:          oxideHandler.TextDocumentDidChange,
		TextDocumentCompletion:         oxideHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: oxideHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Info("starting oxide language server")

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		return err
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}
