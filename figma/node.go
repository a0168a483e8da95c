package figma

import "github.com/reoring/figskema/vectorpath"

// NodeType is the discriminator of a node.
type NodeType string

const (
	NodeDocument         NodeType = "DOCUMENT"
	NodeCanvas           NodeType = "CANVAS"
	NodeFrame            NodeType = "FRAME"
	NodeGroup            NodeType = "GROUP"
	NodeVector           NodeType = "VECTOR"
	NodeBooleanOperation NodeType = "BOOLEAN_OPERATION"
	NodeStar             NodeType = "STAR"
	NodeLine             NodeType = "LINE"
	NodeEllipse          NodeType = "ELLIPSE"
	NodeRegularPolygon   NodeType = "REGULAR_POLYGON"
	NodeRectangle        NodeType = "RECTANGLE"
	NodeText             NodeType = "TEXT"
	NodeSlice            NodeType = "SLICE"
	NodeComponent        NodeType = "COMPONENT"
	NodeComponentSet     NodeType = "COMPONENT_SET"
	NodeInstance         NodeType = "INSTANCE"
)

// NodeTypes lists every node discriminator the decoder handles.
func NodeTypes() []NodeType {
	return []NodeType{
		NodeDocument, NodeCanvas, NodeFrame, NodeGroup, NodeVector,
		NodeBooleanOperation, NodeStar, NodeLine, NodeEllipse, NodeRegularPolygon,
		NodeRectangle, NodeText, NodeSlice, NodeComponent, NodeComponentSet,
		NodeInstance,
	}
}

// Node is a decoded tree entity. The concrete type always matches
// Base().Type.
type Node interface {
	Base() *NodeBase
}

// NodeBase carries the fields shared by every node.
type NodeBase struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Visible  bool     `json:"visible"`
	Type     NodeType `json:"type"`
	Children []Node   `json:"children"`
}

func (n *NodeBase) Base() *NodeBase { return n }

// SameNode reports whether a and b denote the same document node. Identity is
// the node id.
func SameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Base().ID == b.Base().ID
}

// DocumentNode is the root of a file.
type DocumentNode struct {
	NodeBase
}

// CanvasNode is a page.
type CanvasNode struct {
	NodeBase
	BackgroundColor    Color               `json:"backgroundColor"`
	FlowStartingPoints []FlowStartingPoint `json:"flowStartingPoints"`
	ExportSettings     []ExportSetting     `json:"exportSettings"`
}

type GroupNode struct {
	NodeBase
}

type ComponentNode struct {
	NodeBase
}

type ComponentSetNode struct {
	NodeBase
}

// VectorNode carries geometry and paint. It is both the VECTOR node and the
// shared level embedded by every shape-like node.
type VectorNode struct {
	NodeBase
	AbsoluteBoundingBox Rectangle            `json:"absoluteBoundingBox"`
	BlendMode           BlendMode            `json:"blendMode"`
	Constraints         LayoutConstraint     `json:"constraints"`
	Effects             []Effect             `json:"effects"`
	ExportSettings      []ExportSetting      `json:"exportSettings"`
	FillGeometry        []vectorpath.Path    `json:"fillGeometry"`
	Fills               []Paint              `json:"fills"`
	IsMask              bool                 `json:"isMask"`
	LayoutAlign         *LayoutAlign         `json:"layoutAlign,omitempty"`
	LayoutGrow          *LayoutGrow          `json:"layoutGrow,omitempty"`
	Locked              bool                 `json:"locked"`
	Opacity             float64              `json:"opacity"`
	PreserveRatio       bool                 `json:"preserveRatio"`
	RelativeTransform   Transform            `json:"relativeTransform"`
	Size                Vector               `json:"size"`
	StrokeAlign         StrokeAlign          `json:"strokeAlign,omitempty"`
	StrokeCap           StrokeCap            `json:"strokeCap"`
	StrokeDashes        []float64            `json:"strokeDashes"`
	StrokeGeometry      []vectorpath.Path    `json:"strokeGeometry"`
	StrokeJoin          StrokeJoin           `json:"strokeJoin"`
	StrokeMiterAngle    float64              `json:"strokeMiterAngle"`
	Strokes             []Paint              `json:"strokes"`
	StrokeWeight        float64              `json:"strokeWeight"`
	Styles              map[StyleType]string `json:"styles"`
	TransitionDuration  *float64             `json:"transitionDuration,omitempty"`
	TransitionEasing    *EasingType          `json:"transitionEasing,omitempty"`
	TransitionNodeID    *string              `json:"transitionNodeID,omitempty"`
}

// Vector exposes the shared vector level of shape-like nodes.
func (n *VectorNode) Vector() *VectorNode { return n }

// Vectorish is implemented by every node embedding VectorNode.
type Vectorish interface {
	Node
	Vector() *VectorNode
}

// FillBounds unions the bounds of all fill geometry paths. ok is false when
// there is no coordinate-bearing geometry. A malformed path fails the call.
func (n *VectorNode) FillBounds() (r vectorpath.Rect, ok bool, err error) {
	for _, p := range n.FillGeometry {
		pr, pok, perr := p.Bounds()
		if perr != nil {
			return vectorpath.Rect{}, false, perr
		}
		if !pok {
			continue
		}
		if ok {
			r = r.Union(pr)
		} else {
			r, ok = pr, true
		}
	}
	return r, ok, nil
}

// FrameNode adds content clipping to the vector level.
type FrameNode struct {
	VectorNode
	ClipsContent bool `json:"clipsContent"`
}

// InstanceNode is a frame instantiating a component, referenced by id.
type InstanceNode struct {
	FrameNode
	ComponentID string `json:"componentId"`
}

type EllipseNode struct {
	VectorNode
	ArcData ArcData `json:"arcData"`
}

// RectangleNode may carry a uniform radius, per-corner radii, both or neither.
type RectangleNode struct {
	VectorNode
	CornerRadius         *float64     `json:"cornerRadius,omitempty"`
	RectangleCornerRadii *CornerRadii `json:"rectangleCornerRadii,omitempty"`
}

type BooleanOperation string

const (
	BooleanUnion     BooleanOperation = "UNION"
	BooleanIntersect BooleanOperation = "INTERSECT"
	BooleanSubtract  BooleanOperation = "SUBTRACT"
	BooleanExclude   BooleanOperation = "EXCLUDE"
)

type BooleanOperationNode struct {
	VectorNode
	BooleanOperation BooleanOperation `json:"booleanOperation"`
}

type TextNode struct {
	VectorNode
	Characters              string                    `json:"characters"`
	Style                   TypeStyle                 `json:"style"`
	CharacterStyleOverrides []int                     `json:"characterStyleOverrides"`
	StyleOverrideTable      map[int]TypeStyleOverride `json:"styleOverrideTable"`
}

type SliceNode struct {
	VectorNode
}

type LineNode struct {
	VectorNode
}

type RegularPolygonNode struct {
	VectorNode
}

type StarNode struct {
	VectorNode
}
