package figma

import (
	"context"
	"errors"
	"io"

	figskema "github.com/reoring/figskema"
	eng "github.com/reoring/figskema/internal/engine"
	"github.com/reoring/figskema/internal/slogctx"
	"github.com/reoring/figskema/internal/stream"

	// installs the gojson driver as the default.
	_ "github.com/reoring/figskema/source"
)

var (
	metadataMembers = []string{"name", "lastModified", "thumbnailUrl", "role", "version", "linkAccess", "editorType"}
	catalogMembers  = []string{"components", "componentSets", "styles"}
	fileMembers     = concat(metadataMembers, catalogMembers, []string{"schemaVersion", "document"})
	fileNodeMembers = concat(metadataMembers, []string{"nodes"})
	imagesMembers   = []string{"err", "images"}
)

// DecodeFile decodes a file response: metadata, catalogs and the node tree
// rooted at a DOCUMENT node. Top-level members are streamed one at a time and
// unknown ones are skipped without being materialized. The first issue aborts
// the decode; no partial File is returned.
func DecodeFile(ctx context.Context, src figskema.Source, opts ...figskema.Options) (*File, error) {
	d := newDecoder(figskema.LastOptions(opts))
	f, err := d.members(ctx, src, fileMembers)
	if err != nil {
		return nil, err
	}
	file := &File{
		Metadata:      decodeMetadata(f),
		Catalogs:      decodeCatalogs(f),
		SchemaVersion: f.Int("schemaVersion"),
	}
	file.Document = d.document(f)
	if d.failed() {
		return nil, d.err
	}
	slogctx.FromContext(ctx).DebugContext(ctx, "decoded file",
		"name", file.Name,
		"nodes", d.nodes,
		"components", len(file.Components),
		"componentSets", len(file.ComponentSets),
		"styles", len(file.Styles))
	return file, nil
}

// DecodeFileReader reads r fully, bounded by Options.MaxBytes, and decodes it
// with DecodeFile. Drivers that cannot report input offsets only honor
// MaxBytes this way. Options.JSONC selects JSONCBytes over JSONBytes.
func DecodeFileReader(ctx context.Context, r io.Reader, opts ...figskema.Options) (*File, error) {
	o := figskema.LastOptions(opts)
	data, err := figskema.ReadAllLimited(r, o.MaxBytes)
	if err != nil {
		return nil, err
	}
	return DecodeFile(ctx, o.BytesSource(data), o)
}

// DecodeFileNodes decodes a file nodes response. Requested ids that resolved
// to null map to nil.
func DecodeFileNodes(ctx context.Context, src figskema.Source, opts ...figskema.Options) (*FileNodes, error) {
	d := newDecoder(figskema.LastOptions(opts))
	f, err := d.members(ctx, src, fileNodeMembers)
	if err != nil {
		return nil, err
	}
	out := &FileNodes{
		Metadata: decodeMetadata(f),
		Nodes:    map[string]*FileNode{},
	}
	if _, ok := f.lookup("nodes"); !ok {
		f.missing("nodes")
	}
	f.Each("nodes", func(id string, v any, at figskema.PathRef) {
		if v == nil {
			out.Nodes[id] = nil
			return
		}
		nf := d.object(v, at)
		fn := &FileNode{
			Catalogs:      decodeCatalogs(nf),
			SchemaVersion: nf.Int("schemaVersion"),
		}
		if raw, ok := nf.lookup("document"); ok {
			fn.Document = d.tree(raw, at.Field("document"))
		} else {
			nf.missing("document")
		}
		out.Nodes[id] = fn
	})
	if d.failed() {
		return nil, d.err
	}
	slogctx.FromContext(ctx).DebugContext(ctx, "decoded file nodes",
		"name", out.Name, "requested", len(out.Nodes), "nodes", d.nodes)
	return out, nil
}

// DecodeNode decodes one standalone node and its subtree. The concrete type is
// taken from the node's own discriminator.
func DecodeNode(ctx context.Context, src figskema.Source, opts ...figskema.Options) (Node, error) {
	d := newDecoder(figskema.LastOptions(opts))
	raw, err := d.value(ctx, src)
	if err != nil {
		return nil, err
	}
	n := d.tree(raw, figskema.Root())
	if d.failed() {
		return nil, d.err
	}
	return n, nil
}

// DecodeImages decodes an image render response.
func DecodeImages(ctx context.Context, src figskema.Source, opts ...figskema.Options) (*Images, error) {
	d := newDecoder(figskema.LastOptions(opts))
	f, err := d.members(ctx, src, imagesMembers)
	if err != nil {
		return nil, err
	}
	out := &Images{Err: f.OptString("err"), Images: map[string]string{}}
	if _, ok := f.lookup("images"); !ok {
		f.missing("images")
	}
	f.Each("images", func(id string, v any, at figskema.PathRef) {
		if v == nil {
			out.Images[id] = ""
			return
		}
		s, ok := v.(string)
		if !ok {
			d.fail(at.Issue(figskema.CodeShapeMismatch, "", "expected", "string", "got", kindOf(v)))
			return
		}
		out.Images[id] = s
	})
	if d.failed() {
		return nil, d.err
	}
	return out, nil
}

// DecodePaints decodes a top-level array of tagged paints in input order.
func DecodePaints(ctx context.Context, src figskema.Source, opts ...figskema.Options) ([]Paint, error) {
	return decodeTagged(ctx, src, paintTable, opts)
}

// DecodeEffects decodes a top-level array of tagged effects in input order.
func DecodeEffects(ctx context.Context, src figskema.Source, opts ...figskema.Options) ([]Effect, error) {
	return decodeTagged(ctx, src, effectTable, opts)
}

func decodeTagged[K ~string, T any](ctx context.Context, src figskema.Source, t *variantTable[K, T], opts []figskema.Options) ([]T, error) {
	d := newDecoder(figskema.LastOptions(opts))
	raw, err := d.value(ctx, src)
	if err != nil {
		return nil, err
	}
	out := t.decodeList(d, d.list(raw, figskema.Root()), figskema.Root())
	if d.failed() {
		return nil, d.err
	}
	return out, nil
}

// document decodes the required document member of a file and checks that
// its root is a DOCUMENT node.
func (d *decoder) document(f *fields) *DocumentNode {
	raw, ok := f.lookup("document")
	if !ok {
		f.missing("document")
		return nil
	}
	df := d.object(raw, f.at.Field("document"))
	if tag, ok := df.lookup(discriminatorField); ok {
		s, _ := tag.(string)
		if _, known := nodeTable.routines[NodeType(s)]; known && NodeType(s) != NodeDocument {
			d.fail(df.at.Field(discriminatorField).Issue(figskema.CodeUnexpectedVariant, "",
				"expected", string(NodeDocument), "tag", s))
			return nil
		}
	}
	n := d.tree(raw, df.at)
	if d.failed() {
		return nil
	}
	return n.(*DocumentNode)
}

func decodeMetadata(f *fields) Metadata {
	return Metadata{
		Name:         f.String("name"),
		LastModified: f.String("lastModified"),
		ThumbnailURL: f.String("thumbnailUrl"),
		Role:         Role(f.String("role")),
		Version:      f.String("version"),
		LinkAccess:   LinkAccess(f.String("linkAccess")),
		EditorType:   EditorType(f.StringOr("editorType", "")),
	}
}

// decodeCatalogs reads the three id-keyed catalogs of f. Absent catalogs are
// empty.
func decodeCatalogs(f *fields) Catalogs {
	c := emptyCatalogs()
	f.Each("components", func(id string, v any, at figskema.PathRef) {
		c.Components[id] = decodeComponent(f.d.object(v, at))
	})
	f.Each("componentSets", func(id string, v any, at figskema.PathRef) {
		c.ComponentSets[id] = decodeComponentSet(f.d.object(v, at))
	})
	f.Each("styles", func(id string, v any, at figskema.PathRef) {
		c.Styles[id] = decodeStyle(f.d.object(v, at))
	})
	return c
}

func decodeComponent(f *fields) Component {
	return Component{
		Key:                f.String("key"),
		Name:               f.String("name"),
		Description:        f.String("description"),
		DocumentationLinks: objects(f, "documentationLinks", decodeDocumentationLink),
		ComponentSetID:     f.OptString("componentSetId"),
	}
}

func decodeComponentSet(f *fields) ComponentSet {
	return ComponentSet{
		Key:         f.String("key"),
		Name:        f.String("name"),
		Description: f.String("description"),
	}
}

// decodeStyle reads the style kind from styleType, falling back to the older
// type member.
func decodeStyle(f *fields) Style {
	kind := "styleType"
	if !f.has(kind) && f.has("type") {
		kind = "type"
	}
	return Style{
		Key:         f.String("key"),
		Name:        f.String("name"),
		Description: f.String("description"),
		StyleType:   StyleType(f.String(kind)),
	}
}

// source applies Options enforcement to src and logs duplicate keys that
// are only warned about.
func (d *decoder) source(ctx context.Context, src figskema.Source) eng.TokenSource {
	log := slogctx.FromContext(ctx)
	src = figskema.EnforceSource(src, d.opts, func(is figskema.Issue) {
		log.WarnContext(ctx, "duplicate key", "path", is.Path, "offset", is.Offset, "detail", is.Hint)
	})
	return figskema.EngineTokenSource(src)
}

// members streams the top-level object of src and materializes only the
// listed members. The result is a view over those members.
func (d *decoder) members(ctx context.Context, src figskema.Source, wanted []string) (*fields, error) {
	keep := make(map[string]bool, len(wanted))
	for _, k := range wanted {
		keep[k] = true
	}
	ts := d.source(ctx, src)
	m := map[string]any{}
	err := stream.Members(ts, func(key string, first eng.Token) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !keep[key] {
			return eng.Skip(ts, first)
		}
		v, err := eng.DecodeAnyFromSource(stream.NewPreloadedSource(ts, first))
		if err != nil {
			return err
		}
		m[key] = v
		return nil
	})
	if err == nil {
		err = stream.End(ts)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var noe *stream.NotObjectError
		if errors.As(err, &noe) {
			is := figskema.Root().Issue(figskema.CodeShapeMismatch, "", "expected", "object", "got", tokenKindName(noe.Got))
			is.Offset = noe.Offset
			return nil, figskema.Issues{is}
		}
		return nil, figskema.IssuesFrom(err)
	}
	return &fields{d: d, m: m, at: figskema.Root()}, nil
}

// value reads one complete JSON value from src, which must hold nothing
// else.
func (d *decoder) value(ctx context.Context, src figskema.Source) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ts := d.source(ctx, src)
	v, err := eng.DecodeAnyFromSource(ts)
	if err == nil {
		err = stream.End(ts)
	}
	if err != nil {
		return nil, figskema.IssuesFrom(err)
	}
	return v, nil
}

func tokenKindName(k eng.Kind) string {
	switch k {
	case eng.KindBeginArray:
		return "array"
	case eng.KindString:
		return "string"
	case eng.KindNumber:
		return "number"
	case eng.KindBool:
		return "boolean"
	case eng.KindNull:
		return "null"
	}
	return k.String()
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
