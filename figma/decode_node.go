package figma

import (
	"strings"

	figskema "github.com/reoring/figskema"
)

// Each decodeX routine reads the members introduced at its level, then
// delegates to the level it embeds. Children are attached by the tree
// assembler, not here.

func nodeRoutines() map[NodeType]func(*fields) Node {
	return map[NodeType]func(*fields) Node{
		NodeDocument: func(f *fields) Node {
			n := &DocumentNode{}
			decodeNodeBase(f, &n.NodeBase)
			return n
		},
		NodeCanvas: func(f *fields) Node {
			n := &CanvasNode{}
			decodeCanvas(f, n)
			return n
		},
		NodeGroup: func(f *fields) Node {
			n := &GroupNode{}
			decodeNodeBase(f, &n.NodeBase)
			return n
		},
		NodeComponent: func(f *fields) Node {
			n := &ComponentNode{}
			decodeNodeBase(f, &n.NodeBase)
			return n
		},
		NodeComponentSet: func(f *fields) Node {
			n := &ComponentSetNode{}
			decodeNodeBase(f, &n.NodeBase)
			return n
		},
		NodeVector: func(f *fields) Node {
			n := &VectorNode{}
			decodeVector(f, n)
			return n
		},
		NodeFrame: func(f *fields) Node {
			n := &FrameNode{}
			decodeFrame(f, n)
			return n
		},
		NodeInstance: func(f *fields) Node {
			n := &InstanceNode{}
			decodeInstance(f, n)
			return n
		},
		NodeEllipse: func(f *fields) Node {
			n := &EllipseNode{}
			n.ArcData = decodeArcData(f.Object("arcData"))
			decodeVector(f, &n.VectorNode)
			return n
		},
		NodeRectangle: func(f *fields) Node {
			n := &RectangleNode{}
			decodeRectangleNode(f, n)
			return n
		},
		NodeBooleanOperation: func(f *fields) Node {
			n := &BooleanOperationNode{}
			decodeBooleanOperation(f, n)
			return n
		},
		NodeText: func(f *fields) Node {
			n := &TextNode{}
			decodeText(f, n)
			return n
		},
		NodeSlice: func(f *fields) Node {
			n := &SliceNode{}
			decodeVector(f, &n.VectorNode)
			return n
		},
		NodeLine: func(f *fields) Node {
			n := &LineNode{}
			decodeVector(f, &n.VectorNode)
			return n
		},
		NodeRegularPolygon: func(f *fields) Node {
			n := &RegularPolygonNode{}
			decodeVector(f, &n.VectorNode)
			return n
		},
		NodeStar: func(f *fields) Node {
			n := &StarNode{}
			decodeVector(f, &n.VectorNode)
			return n
		},
	}
}

func decodeNodeBase(f *fields, n *NodeBase) {
	n.ID = f.String("id")
	n.Name = f.String("name")
	n.Visible = f.BoolOr("visible", true)
	n.Type = NodeType(f.String("type"))
}

func decodeCanvas(f *fields, n *CanvasNode) {
	n.BackgroundColor = decodeColor(f.Object("backgroundColor"))
	n.FlowStartingPoints = objects(f, "flowStartingPoints", decodeFlowStartingPoint)
	n.ExportSettings = objects(f, "exportSettings", decodeExportSetting)
	decodeNodeBase(f, &n.NodeBase)
}

func decodeVector(f *fields, n *VectorNode) {
	n.AbsoluteBoundingBox = decodeRectangle(f.Object("absoluteBoundingBox"))
	n.BlendMode = BlendMode(f.String("blendMode"))
	n.Constraints = decodeLayoutConstraint(f.Object("constraints"))
	n.Effects = effectTable.decodeField(f, "effects")
	n.ExportSettings = objects(f, "exportSettings", decodeExportSetting)
	n.FillGeometry = objects(f, "fillGeometry", decodePath)
	n.Fills = paintTable.decodeField(f, "fills")
	n.IsMask = f.BoolOr("isMask", false)
	n.LayoutAlign = optEnum[LayoutAlign](f, "layoutAlign")
	if f.has("layoutGrow") {
		g := LayoutGrow(f.Int("layoutGrow"))
		n.LayoutGrow = &g
	}
	n.Locked = f.BoolOr("locked", false)
	n.Opacity = f.FloatOr("opacity", 1)
	n.PreserveRatio = f.BoolOr("preserveRatio", false)
	n.RelativeTransform = f.Transform("relativeTransform")
	n.Size = decodeVectorValue(f.Object("size"))
	n.StrokeAlign = StrokeAlign(f.StringOr("strokeAlign", ""))
	n.StrokeCap = StrokeCap(f.StringOr("strokeCap", string(StrokeCapNone)))
	n.StrokeDashes = f.numbers("strokeDashes")
	n.StrokeGeometry = objects(f, "strokeGeometry", decodePath)
	n.StrokeJoin = StrokeJoin(f.StringOr("strokeJoin", string(StrokeJoinMiter)))
	n.StrokeMiterAngle = f.FloatOr("strokeMiterAngle", 28.96)
	n.Strokes = paintTable.decodeField(f, "strokes")
	n.StrokeWeight = f.Float("strokeWeight")
	n.Styles = map[StyleType]string{}
	f.Each("styles", func(key string, v any, at figskema.PathRef) {
		id, ok := v.(string)
		if !ok {
			f.d.fail(at.Issue(figskema.CodeShapeMismatch, "", "expected", "string", "got", kindOf(v)))
			return
		}
		n.Styles[StyleType(strings.ToUpper(key))] = id
	})
	n.TransitionDuration = f.OptFloat("transitionDuration")
	n.TransitionEasing = optEnum[EasingType](f, "transitionEasing")
	n.TransitionNodeID = f.OptString("transitionNodeID")
	decodeNodeBase(f, &n.NodeBase)
}

func decodeFrame(f *fields, n *FrameNode) {
	n.ClipsContent = f.Bool("clipsContent")
	decodeVector(f, &n.VectorNode)
}

func decodeInstance(f *fields, n *InstanceNode) {
	n.ComponentID = f.String("componentId")
	decodeFrame(f, &n.FrameNode)
}

func decodeRectangleNode(f *fields, n *RectangleNode) {
	n.CornerRadius = f.OptFloat("cornerRadius")
	n.RectangleCornerRadii = f.OptCornerRadii("rectangleCornerRadii")
	decodeVector(f, &n.VectorNode)
}

// decodeBooleanOperation reads the operation from the first configured member
// name that is present.
func decodeBooleanOperation(f *fields, n *BooleanOperationNode) {
	names := f.d.opts.BooleanOperationFields
	if name, ok := f.firstOf(names); ok {
		n.BooleanOperation = BooleanOperation(f.String(name))
	} else {
		f.missing(names[0])
	}
	decodeVector(f, &n.VectorNode)
}
