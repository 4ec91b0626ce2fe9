package docs

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/render"
)

// TemplateRegistry holds prepared templates by name. It is safe for
// concurrent use; the documents it instantiates are not.
type TemplateRegistry struct {
	warner *errors.Warner

	mu        sync.RWMutex
	templates map[string]preparedTemplate
}

type preparedTemplate struct {
	root        *dom.Node
	fingerprint uint64
}

// NewTemplateRegistry creates an empty registry. A nil warner falls back
// to errors.DefaultWarner().
func NewTemplateRegistry(w *errors.Warner) *TemplateRegistry {
	if w == nil {
		w = errors.DefaultWarner()
	}
	return &TemplateRegistry{
		warner:    w,
		templates: make(map[string]preparedTemplate),
	}
}

// Key returns the registry key of a template: the lower-cased base and
// name joined by a slash.
func Key(base, name string) string {
	if base == "" {
		return strings.ToLower(name)
	}
	return strings.ToLower(base + "/" + name)
}

// Prepare parses markup and stores it under Key(base, name). A template
// already stored under that key is kept. The key is returned.
func (r *TemplateRegistry) Prepare(base, name, markup string) (string, error) {
	nodes, err := dom.ParseHTML(markup)
	if err != nil {
		return "", fmt.Errorf("prepare template %s: %w", Key(base, name), err)
	}
	return r.PrepareNodes(base, name, nodes), nil
}

// PrepareNodes stores nodes under Key(base, name), detaching them from
// their parents.
func (r *TemplateRegistry) PrepareNodes(base, name string, nodes []*dom.Node) string {
	key := Key(base, name)
	r.mu.RLock()
	_, exists := r.templates[key]
	r.mu.RUnlock()
	if exists {
		return key
	}

	root := dom.NewElement("div")
	for _, n := range nodes {
		n.Remove()
		root.AppendChild(n)
	}
	convertTemplate(root)
	t := preparedTemplate{
		root:        root,
		fingerprint: xxhash.Sum64String(render.InnerHTML(root)),
	}

	r.mu.Lock()
	if _, exists := r.templates[key]; !exists {
		r.templates[key] = t
	}
	r.mu.Unlock()
	return key
}

// Has reports whether a template is stored under key.
func (r *TemplateRegistry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.templates[strings.ToLower(key)]
	return ok
}

// Fingerprint returns the hash of the prepared markup stored under key.
func (r *TemplateRegistry) Fingerprint(key string) (uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[strings.ToLower(key)]
	return t.fingerprint, ok
}

// Names returns the keys of all stored templates, sorted.
func (r *TemplateRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.templates))
	for k := range r.templates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Instantiate creates a fresh copy of the template stored under key and
// fills its holes. An unknown key warns and yields Empty.
func (r *TemplateRegistry) Instantiate(key string, holes ...Hole) Doc {
	r.mu.RLock()
	t, ok := r.templates[strings.ToLower(key)]
	var root *dom.Node
	if ok {
		root = t.root.Clone(true)
	}
	r.mu.RUnlock()
	if !ok {
		r.warner.Warn("W005", "template", key)
		return Empty()
	}
	return childrenTemplate(r.warner, root, holes)
}

// convertTemplate rewrites authoring shorthands into the markup
// ChildrenTemplate reads: ws-onclick="x" becomes ws-on="click:x", ${x} in
// text becomes a ws-replace span and attributes holding ${x} are listed
// in ws-attr-holes. Hole names are lower-cased.
func convertTemplate(root *dom.Node) {
	var elems, texts []*dom.Node
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		c.Walk(func(n *dom.Node) bool {
			switch n.Kind {
			case dom.ElementNode:
				elems = append(elems, n)
			case dom.TextNode:
				texts = append(texts, n)
			}
			return true
		})
	}
	for _, el := range elems {
		convertAttrs(el)
	}
	for _, t := range texts {
		convertText(t)
	}
}

func convertAttrs(el *dom.Node) {
	var events, holed, remove []string
	for _, a := range el.Attributes() {
		switch {
		case strings.HasPrefix(a.Name, attrOn) && a.Name != attrOn && a.Name != attrOnAfterRender:
			remove = append(remove, a.Name)
			events = append(events, a.Name[len(attrOn):]+":"+strings.ToLower(a.Value))
		case !strings.HasPrefix(a.Name, "ws-") && textHoleRE.MatchString(a.Value):
			el.SetAttribute(a.Name, lowerPlaceholders(a.Value))
			holed = append(holed, a.Name)
		}
	}
	for _, name := range remove {
		el.RemoveAttribute(name)
	}
	if len(events) > 0 {
		el.SetAttribute(attrOn, strings.Join(events, " "))
	}
	if len(holed) > 0 {
		el.SetAttribute(attrAttrHoles, strings.Join(holed, " "))
	}
	for _, name := range []string{attrHole, attrReplace, attrAttr, attrOnAfterRender, attrVar} {
		if v, ok := el.GetAttribute(name); ok {
			el.SetAttribute(name, strings.ToLower(v))
		}
	}
}

func lowerPlaceholders(s string) string {
	return textHoleRE.ReplaceAllStringFunc(s, strings.ToLower)
}

func convertText(t *dom.Node) {
	s := t.Data
	matches := textHoleRE.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return
	}
	parent := t.Parent()
	last := 0
	for _, m := range matches {
		if m[0] > last {
			parent.InsertBefore(dom.NewText(s[last:m[0]]), t)
		}
		hole := dom.NewElement("span")
		hole.SetAttribute(attrReplace, strings.ToLower(s[m[2]:m[3]]))
		parent.InsertBefore(hole, t)
		last = m[1]
	}
	if last < len(s) {
		t.Data = s[last:]
	} else {
		parent.RemoveChild(t)
	}
}
