/*
Package otload imports OpenType fonts into editing workspaces.

Loading resolves a font by name through the platform's font
directories, parses it, and turns every glyph of the font into an
editable workspace glyph: outlines become contours in design units,
advances, names and codepoints are carried over. Resolution and import
run asynchronously; callers receive a promise and await its workspace.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package otload

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/punchcut/core"
	"github.com/npillmayer/punchcut/core/font"
	"github.com/npillmayer/punchcut/core/parameters"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'punchcut.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("punchcut.fonts")
}

type wsPlusErr struct {
	ws  *font.Workspace
	err error
}

// A WorkspacePromise is the future result of an asynchronous font
// import.
type WorkspacePromise interface {
	// Workspace blocks until the import finishes.
	Workspace() (*font.Workspace, error)
	// AwaitWorkspace blocks until the import finishes or ctx is done.
	AwaitWorkspace(ctx context.Context) (*font.Workspace, error)
}

type wsLoader struct {
	await func(ctx context.Context) (*font.Workspace, error)
}

func (loader wsLoader) Workspace() (*font.Workspace, error) {
	return loader.await(context.Background())
}

func (loader wsLoader) AwaitWorkspace(ctx context.Context) (*font.Workspace, error) {
	return loader.await(ctx)
}

// Load locates the named font among the system's fonts, imports it and
// resolves the returned promise with a workspace holding every glyph of
// the font. Locating and importing run concurrently to the caller.
//
// When name stays unresolved or unparsable, the promise carries a
// workspace built from the embedded fallback font instead, together
// with an error reporting the substitution. An empty name asks for the
// fallback font directly.
func Load(name string, regs *parameters.EditingRegisters) WorkspacePromise {
	ch := make(chan wsPlusErr, 1) // loader must not block on abandoned promises
	go func(ch chan<- wsPlusErr) {
		result := wsPlusErr{}
		var binary []byte
		if name != "" {
			if fpath := locate(name); fpath != "" {
				tracer().Debugf("%s is a system font", name)
				var err error
				if binary, err = os.ReadFile(fpath); err != nil {
					tracer().Errorf("cannot read font file %s: %v", fpath, err)
					binary = nil
				}
			}
			if binary == nil {
				result.err = core.Error(core.EMISSING,
					"font not found: %s, substituted Go Regular", name)
			}
		}
		if binary != nil {
			result.ws, result.err = Import(binary, regs)
		}
		if result.ws == nil {
			result.ws = importFont(fallbackFont(), goregular.TTF, regs)
		}
		ch <- result
		close(ch)
	}(ch)
	return wsLoader{
		await: func(ctx context.Context) (*font.Workspace, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.ws, r.err
			}
		},
	}
}

// locate tries to find name among the system's font files. Names
// without an extension are also tried with the common OpenType ones.
func locate(name string) string {
	candidates := []string{name}
	if filepath.Ext(name) == "" {
		candidates = append(candidates, name+".ttf", name+".otf")
	}
	for _, c := range candidates {
		if fpath, err := findfont.Find(c); err == nil && fpath != "" {
			return fpath
		}
	}
	return ""
}

// --- Fallback font ---------------------------------------------------------

// fallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Regular.
func fallbackFont() *sfnt.Font {
	fallbackLoading.Do(func() {
		fallback = loadFallbackFont()
	})
	return fallback
}

var fallbackLoading sync.Once

var fallback *sfnt.Font

func loadFallbackFont() *sfnt.Font {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return f
}
