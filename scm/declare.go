/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/launix-de/NonLockingReadMap"
)

// Declaration describes a builtin. Builtins with a nil Fn are constants holding Value,
// unless Special is set: special forms are documented here but handled by Eval.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int // -1 = variadic
	Params       []DeclarationParameter
	Returns      string // any | number | int | bool | func | list | symbol | nil
	Fn           func(a ...Scmer) (Scmer, error)
	Value        Scmer
	Special      bool
}

type DeclarationParameter struct {
	Name string
	Type string // any | number | int | bool | func | list | symbol | nil
	Desc string
}

func (d Declaration) GetKey() string { return d.Name }

func (d Declaration) ComputeSize() uint {
	return uint(64 + len(d.Name) + len(d.Desc) + 48*len(d.Params))
}

var declaration_titles []string
var declarations = NonLockingReadMap.New[Declaration, string]()

// builtins is the prototype every base environment is copied from; it is only written during init
var builtins = Env{Vars: make(Vars)}

func DeclareTitle(title string) {
	declaration_titles = append(declaration_titles, "#"+title)
}

// Declare registers def for help and documentation and binds it in env (if env != nil).
func Declare(env *Env, def *Declaration) {
	if declarations.Get(def.Name) == nil {
		declaration_titles = append(declaration_titles, def.Name)
	}
	declarations.Set(def)
	if env != nil {
		env.Define(def.Name, def.Bind())
	}
}

// Bind returns the value a name for def is bound to
func (d *Declaration) Bind() Scmer {
	if d.Fn == nil {
		return d.Value
	}
	return NewProc(builtin{d})
}

// NewBaseEnv builds a fresh parent-less environment with all builtins.
func NewBaseEnv() *Env {
	en := NewEnv(nil)
	for k, v := range builtins.Vars {
		en.Vars[k] = v
	}
	return en
}

// builtin is the Procedure bound for a Declaration
type builtin struct {
	def *Declaration
}

func (b builtin) Name() string { return b.def.Name }

func (b builtin) Arity() (int, int) { return b.def.MinParameter, b.def.MaxParameter }

func (b builtin) Apply(args []Scmer) (Scmer, error) {
	return b.def.Fn(args...)
}

// DeclarationFor finds the declaration of a builtin by name
func DeclarationFor(name string) *Declaration {
	return declarations.Get(name)
}

// DeclarationForValue resolves a procedure value or symbol to its Declaration.
func DeclarationForValue(v Scmer) *Declaration {
	switch v.Kind() {
	case KindProc:
		if b, ok := v.Proc().(builtin); ok {
			return b.def
		}
		return declarations.Get(v.Proc().Name())
	case KindSymbol:
		return declarations.Get(v.Symbol())
	}
	return nil
}

func (d *Declaration) arityText() string {
	if d.Fn == nil && !d.Special {
		return "constant"
	}
	if d.MaxParameter < 0 {
		return fmt.Sprintf("%d–n", d.MinParameter)
	}
	return fmt.Sprintf("%d–%d", d.MinParameter, d.MaxParameter)
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	// Keep only a–z, 0–9, -, _
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		out = "chapter"
	}
	return out
}

type chapter struct {
	Title string
	Slug  string
	Fns   []*Declaration
}

func chapters() []*chapter {
	var result []*chapter
	var current *chapter
	usedSlugs := map[string]int{}
	uniqSlug := func(s string) string {
		base := slugify(s)
		if usedSlugs[base] == 0 {
			usedSlugs[base] = 1
			return base
		}
		for i := 2; ; i++ {
			candidate := fmt.Sprintf("%s-%d", base, i)
			if usedSlugs[candidate] == 0 {
				usedSlugs[candidate] = 1
				return candidate
			}
		}
	}
	for _, t := range declaration_titles {
		if len(t) > 0 && t[0] == '#' {
			title := strings.TrimSpace(t[1:])
			current = &chapter{Title: title, Slug: uniqSlug(title)}
			result = append(result, current)
			continue
		}
		def := declarations.Get(t)
		if def == nil {
			continue
		}
		if current == nil {
			// functions before any title
			current = &chapter{Title: "General", Slug: uniqSlug("General")}
			result = append(result, current)
		}
		current.Fns = append(current.Fns, def)
	}
	return result
}

// WriteDocumentation generates Markdown docs:
// - index.md with links to chapters
// - one <chapter>.md file per chapter, containing all functions of that chapter
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}
	chs := chapters()

	indexPath := filepath.Join(folder, "index.md")
	indexFile, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", indexPath, err)
	}
	defer indexFile.Close()

	fmt.Fprint(indexFile, "# Documentation\n\n")
	for _, ch := range chs {
		if len(ch.Fns) == 0 {
			continue
		}
		fmt.Fprintf(indexFile, "- [%s](%s.md)\n", ch.Title, ch.Slug)
	}

	for _, ch := range chs {
		if len(ch.Fns) == 0 {
			continue
		}
		fp := filepath.Join(folder, ch.Slug+".md")
		f, err := os.Create(fp)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", fp, err)
		}
		fmt.Fprintf(f, "# %s\n\n", ch.Title)
		for _, def := range ch.Fns {
			fmt.Fprintf(f, "## %s\n\n", def.Name)
			if def.Desc != "" {
				fmt.Fprintf(f, "%s\n\n", def.Desc)
			}
			if def.Fn == nil && !def.Special {
				fmt.Fprintf(f, "**Value:** `%s`\n\n", String(def.Value))
				continue
			}
			fmt.Fprintf(f, "**Allowed number of parameters:** %s\n\n", def.arityText())
			fmt.Fprint(f, "### Parameters\n\n")
			if len(def.Params) == 0 {
				fmt.Fprint(f, "_This function has no parameters._\n\n")
			} else {
				for _, p := range def.Params {
					fmt.Fprintf(f, "- **%s** (`%s`): %s\n", p.Name, p.Type, p.Desc)
				}
				fmt.Fprintln(f)
			}
			fmt.Fprintf(f, "### Returns\n\n`%s`\n\n", def.Returns)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Help prints the list of builtins (topic is nil) or the declaration of one builtin
func Help(w io.Writer, topic *Scmer) error {
	if topic == nil {
		fmt.Fprintln(w, "Available scm functions:")
		for _, ch := range chapters() {
			fmt.Fprintln(w, "")
			fmt.Fprintln(w, "-- "+ch.Title+" --")
			for _, def := range ch.Fns {
				fmt.Fprintln(w, "  "+def.Name+": "+strings.Split(def.Desc, "\n")[0])
			}
		}
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "get further information by typing (help functionname) to get more info")
		return nil
	}
	def := DeclarationForValue(*topic)
	if def == nil {
		return evalError("help", ErrTypeMismatch, "function not found: %s", String(*topic))
	}
	fmt.Fprintln(w, "Help for: "+def.Name)
	fmt.Fprintln(w, "===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, def.Desc)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Allowed no. of parameters:", def.arityText())
	fmt.Fprintln(w, "")
	for _, p := range def.Params {
		fmt.Fprintln(w, " - "+p.Name+" ("+p.Type+"): "+p.Desc)
	}
	fmt.Fprintln(w, "")
	return nil
}
