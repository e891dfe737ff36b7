package workspace

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/brask/javahdr/java"
	"github.com/brask/javahdr/java/parser"
)

const lsName = "javahdr"

// LSPServer exposes the header parser to an editor over stdio: open, change
// and save reparse the document and publish diagnostics; documentSymbol
// renders the header AST as an outline.
type LSPServer struct {
	ws      *Workspace
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{ws: New(), version: version}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.DocumentSymbolProvider = boolPtr(true)

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	f := ls.ws.Update(path, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, params.TextDocument.URI, f)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	whole, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	f := ls.ws.Update(path, []byte(whole.Text))
	ls.publishDiagnostics(ctx, params.TextDocument.URI, f)
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err == nil {
		ls.ws.Forget(path)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	var f *File
	if params.Text != nil {
		f = ls.ws.Update(path, []byte(*params.Text))
	} else {
		f, err = ls.ws.Load(path)
		if err != nil {
			return nil
		}
	}
	ls.publishDiagnostics(ctx, params.TextDocument.URI, f)
	return nil
}

// publishDiagnostics reports the single fail-fast syntax error a file
// produced, or clears diagnostics once it parses cleanly.
func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri string, f *File) {
	diags := []protocol.Diagnostic{}
	if f.Err != nil {
		diags = append(diags, diagnosticFor(f.Err))
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

func diagnosticFor(err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	diag, ok := err.(*parser.Diagnostic)
	if !ok {
		return protocol.Diagnostic{
			Range:    protocol.Range{Start: protocol.Position{}, End: protocol.Position{}},
			Severity: &severity,
			Message:  err.Error(),
		}
	}
	line, col := diag.Source.LineCol(int(diag.Pos))
	pos := protocol.Position{Line: uint32(line - 1), Character: uint32(col - 1)}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: &severity,
		Message:  diag.Cause.Error(),
	}
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := ls.ws.Get(path)
	if f == nil || f.Unit == nil {
		return nil, nil
	}

	var symbols []protocol.DocumentSymbol
	for _, d := range f.Unit.Decls {
		symbols = append(symbols, tyDeclSymbol(f, d))
	}
	return symbols, nil
}

func tyDeclSymbol(f *File, d *java.TyDecl) protocol.DocumentSymbol {
	r := rangeFor(f, d.P)
	sym := protocol.DocumentSymbol{
		Name:           d.Name,
		Kind:           tyDeclSymbolKind(d.Kind),
		Range:          r,
		SelectionRange: r,
	}
	for _, m := range d.Members {
		sym.Children = append(sym.Children, memberSymbol(f, m))
	}
	return sym
}

func memberSymbol(f *File, m java.Member) protocol.DocumentSymbol {
	r := rangeFor(f, m.Pos())
	switch v := m.(type) {
	case *java.VarDecl:
		return protocol.DocumentSymbol{Name: v.Name, Kind: protocol.SymbolKindField, Range: r, SelectionRange: r}
	case *java.MethDecl:
		kind := protocol.SymbolKindMethod
		if v.IsConstructor() {
			kind = protocol.SymbolKindConstructor
		}
		return protocol.DocumentSymbol{Name: v.Name, Kind: kind, Range: r, SelectionRange: r}
	case *java.TyDecl:
		return tyDeclSymbol(f, v)
	}
	return protocol.DocumentSymbol{Name: "<unknown>", Kind: protocol.SymbolKindNull, Range: r, SelectionRange: r}
}

func tyDeclSymbolKind(k java.TyDeclKind) protocol.SymbolKind {
	switch k {
	case java.Interface:
		return protocol.SymbolKindInterface
	case java.Enum:
		return protocol.SymbolKindEnum
	case java.Annotation:
		return protocol.SymbolKindInterface
	default:
		return protocol.SymbolKindClass
	}
}

func rangeFor(f *File, p java.Pos) protocol.Range {
	line, col := (&java.Source{Content: f.Content}).LineCol(int(p))
	pos := protocol.Position{Line: uint32(line - 1), Character: uint32(col - 1)}
	return protocol.Range{Start: pos, End: pos}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
