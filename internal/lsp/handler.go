package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"oxide/internal/parser"
)

// Define the set of supported semantic token types advertised in the legend
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// OxideHandler implements the LSP server handlers. Documents are kept in
// memory from didOpen until didClose and reparsed on every change.
type OxideHandler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
	results map[protocol.DocumentUri]*parser.ParseResult

	opts []parser.Option
	log  commonlog.Logger
}

// NewOxideHandler creates a handler; opts are passed to every parse. Parser
// recovery is logged through the handler's own logger.
func NewOxideHandler(opts ...parser.Option) *OxideHandler {
	log := commonlog.GetLogger("oxide.lsp")
	return &OxideHandler{
		content: make(map[protocol.DocumentUri]string),
		results: make(map[protocol.DocumentUri]*parser.ParseResult),
		opts:    append([]parser.Option{parser.WithLogger(log)}, opts...),
		log:     log,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *OxideHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: "oxide",
		},
	}, nil
}

func (h *OxideHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

func (h *OxideHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *OxideHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened document and publishes its diagnostics
func (h *OxideHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Debugf("opened %s", params.TextDocument.URI)

	result := h.update(params.TextDocument.URI, params.TextDocument.Text)
	publishDiagnostics(ctx, params.TextDocument.URI, result)
	return nil
}

// TextDocumentDidChange applies the edits, reparses and republishes diagnostics
func (h *OxideHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.log.Debugf("changed %s", uri)

	h.mu.RLock()
	text := h.content[uri]
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, c)
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	result := h.update(uri, text)
	publishDiagnostics(ctx, uri, result)
	return nil
}

// TextDocumentDidClose drops the document and clears its diagnostics
func (h *OxideHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.content, uri)
	delete(h.results, uri)
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, nil)
	return nil
}

// TextDocumentCompletion offers the keyword and every variable declared so far
func (h *OxideHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	result, err := h.getOrUpdate(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(result),
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *OxideHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	result, err := h.getOrUpdate(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(result)),
	}, nil
}

// getOrUpdate returns the last parse of uri, reading it from disk when the
// client never opened it.
func (h *OxideHandler) getOrUpdate(ctx *glsp.Context, uri protocol.DocumentUri) (*parser.ParseResult, error) {
	h.mu.RLock()
	result, ok := h.results[uri]
	h.mu.RUnlock()
	if ok {
		return result, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	result = h.update(uri, string(content))
	publishDiagnostics(ctx, uri, result)
	return result, nil
}

func (h *OxideHandler) update(uri protocol.DocumentUri, text string) *parser.ParseResult {
	result := parser.Parse(text, h.opts...)
	if len(result.Errors) > 0 {
		h.log.Debugf("%s: %d parse errors", uri, len(result.Errors))
	}

	h.mu.Lock()
	h.content[uri] = text
	h.results[uri] = result
	h.mu.Unlock()

	return result
}

// applyChange splices a ranged edit into text.
func applyChange(text string, change protocol.TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}
	start := offsetOf(text, change.Range.Start)
	end := max(offsetOf(text, change.Range.End), start)
	return text[:start] + change.Text + text[end:]
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) to get C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
