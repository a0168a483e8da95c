package figma

// Color is an RGBA color with channels in 0..1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Vector is a 2D vector. Missing coordinates decode as 0.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rectangle is an axis-aligned box in absolute canvas coordinates.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Transform is a 2x3 affine matrix [[a, b, tx], [c, d, ty]], decoded
// positionally.
type Transform [2][3]float64

// Identity is the identity transform.
var Identity = Transform{{1, 0, 0}, {0, 1, 0}}

// Apply maps v through the transform.
func (t Transform) Apply(v Vector) Vector {
	return Vector{
		X: t[0][0]*v.X + t[0][1]*v.Y + t[0][2],
		Y: t[1][0]*v.X + t[1][1]*v.Y + t[1][2],
	}
}

// Translation returns (tx, ty).
func (t Transform) Translation() Vector { return Vector{X: t[0][2], Y: t[1][2]} }

// CornerRadii are per-corner radii, clockwise from top-left.
type CornerRadii struct {
	TopLeft     float64 `json:"topLeft"`
	TopRight    float64 `json:"topRight"`
	BottomRight float64 `json:"bottomRight"`
	BottomLeft  float64 `json:"bottomLeft"`
}

// ArcData describes an ellipse arc.
type ArcData struct {
	StartingAngle float64 `json:"startingAngle"`
	EndingAngle   float64 `json:"endingAngle"`
	InnerRadius   float64 `json:"innerRadius"`
}

type LayoutConstraint struct {
	Vertical   VerticalConstraint   `json:"vertical"`
	Horizontal HorizontalConstraint `json:"horizontal"`
}

type VerticalConstraint string

const (
	ConstraintTop       VerticalConstraint = "TOP"
	ConstraintBottom    VerticalConstraint = "BOTTOM"
	ConstraintCenterV   VerticalConstraint = "CENTER"
	ConstraintTopBottom VerticalConstraint = "TOP_BOTTOM"
	ConstraintScaleV    VerticalConstraint = "SCALE"
)

type HorizontalConstraint string

const (
	ConstraintLeft      HorizontalConstraint = "LEFT"
	ConstraintRight     HorizontalConstraint = "RIGHT"
	ConstraintCenterH   HorizontalConstraint = "CENTER"
	ConstraintLeftRight HorizontalConstraint = "LEFT_RIGHT"
	ConstraintScaleH    HorizontalConstraint = "SCALE"
)

// ExportSetting describes one export configured on a node.
type ExportSetting struct {
	Suffix     string           `json:"suffix"`
	Format     ExportFormat     `json:"format"`
	Constraint ExportConstraint `json:"constraint"`
}

type ExportFormat string

const (
	FormatJPG ExportFormat = "JPG"
	FormatPNG ExportFormat = "PNG"
	FormatSVG ExportFormat = "SVG"
)

type ExportConstraint struct {
	Type  ExportConstraintType `json:"type"`
	Value float64              `json:"value"`
}

type ExportConstraintType string

const (
	ExportScale  ExportConstraintType = "SCALE"
	ExportWidth  ExportConstraintType = "WIDTH"
	ExportHeight ExportConstraintType = "HEIGHT"
)

// FlowStartingPoint is a prototype flow entry on a canvas.
type FlowStartingPoint struct {
	NodeID string `json:"nodeId"`
	Name   string `json:"name"`
}

type DocumentationLink struct {
	URI string `json:"uri"`
}

// BlendMode is kept as the raw wire token; unknown modes are preserved.
type BlendMode string

const (
	BlendPassThrough BlendMode = "PASS_THROUGH"
	BlendNormal      BlendMode = "NORMAL"
	BlendDarken      BlendMode = "DARKEN"
	BlendMultiply    BlendMode = "MULTIPLY"
	BlendLinearBurn  BlendMode = "LINEAR_BURN"
	BlendColorBurn   BlendMode = "COLOR_BURN"
	BlendLighten     BlendMode = "LIGHTEN"
	BlendScreen      BlendMode = "SCREEN"
	BlendLinearDodge BlendMode = "LINEAR_DODGE"
	BlendColorDodge  BlendMode = "COLOR_DODGE"
	BlendOverlay     BlendMode = "OVERLAY"
	BlendSoftLight   BlendMode = "SOFT_LIGHT"
	BlendHardLight   BlendMode = "HARD_LIGHT"
	BlendDifference  BlendMode = "DIFFERENCE"
	BlendExclusion   BlendMode = "EXCLUSION"
	BlendHue         BlendMode = "HUE"
	BlendSaturation  BlendMode = "SATURATION"
	BlendColor       BlendMode = "COLOR"
	BlendLuminosity  BlendMode = "LUMINOSITY"
)

type StrokeCap string

const (
	StrokeCapNone          StrokeCap = "NONE"
	StrokeCapRound         StrokeCap = "ROUND"
	StrokeCapSquare        StrokeCap = "SQUARE"
	StrokeCapLineArrow     StrokeCap = "LINE_ARROW"
	StrokeCapTriangleArrow StrokeCap = "TRIANGLE_ARROW"
)

type StrokeJoin string

const (
	StrokeJoinMiter StrokeJoin = "MITER"
	StrokeJoinBevel StrokeJoin = "BEVEL"
	StrokeJoinRound StrokeJoin = "ROUND"
)

type StrokeAlign string

const (
	StrokeInside  StrokeAlign = "INSIDE"
	StrokeOutside StrokeAlign = "OUTSIDE"
	StrokeCenter  StrokeAlign = "CENTER"
)

type LayoutAlign string

const (
	LayoutAlignInherit LayoutAlign = "INHERIT"
	LayoutAlignStretch LayoutAlign = "STRETCH"
)

// LayoutGrow is 0 (fixed size) or 1 (stretch).
type LayoutGrow int

const (
	LayoutGrowFixed   LayoutGrow = 0
	LayoutGrowStretch LayoutGrow = 1
)

type EasingType string

const (
	EaseIn       EasingType = "EASE_IN"
	EaseOut      EasingType = "EASE_OUT"
	EaseInOut    EasingType = "EASE_IN_AND_OUT"
	EasingLinear EasingType = "LINEAR"
)
