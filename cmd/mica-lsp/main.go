// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"mica/internal/lsp"
)

const lsName = "mica" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	// Create a new instance of the MicaHandler (your language-specific handler)
	micaHandler := lsp.NewMicaHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:             micaHandler.Initialize,
		Initialized:            micaHandler.Initialized,
		Shutdown:               micaHandler.Shutdown,
		TextDocumentDidOpen:    micaHandler.TextDocumentDidOpen,
		TextDocumentDidClose:   micaHandler.TextDocumentDidClose,
		TextDocumentDidChange:  micaHandler.TextDocumentDidChange,
		TextDocumentCompletion: micaHandler.TextDocumentCompletion,
	}

	// Create a new GLSP (Go Language Server Protocol) server instance
	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Mica LSP server...")

	// Start the server over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Mica LSP server:", err)
		os.Exit(1)
	}
}
