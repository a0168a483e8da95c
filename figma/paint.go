package figma

// PaintType is the discriminator of a paint.
type PaintType string

const (
	PaintSolid           PaintType = "SOLID"
	PaintGradientLinear  PaintType = "GRADIENT_LINEAR"
	PaintGradientRadial  PaintType = "GRADIENT_RADIAL"
	PaintGradientAngular PaintType = "GRADIENT_ANGULAR"
	PaintGradientDiamond PaintType = "GRADIENT_DIAMOND"
	PaintImage           PaintType = "IMAGE"
	PaintEmoji           PaintType = "EMOJI"
)

// PaintTypes lists every paint discriminator the decoder handles.
func PaintTypes() []PaintType {
	return []PaintType{
		PaintSolid, PaintGradientLinear, PaintGradientRadial, PaintGradientAngular,
		PaintGradientDiamond, PaintImage, PaintEmoji,
	}
}

// Paint is a fill or stroke. The concrete type always matches
// Base().Type.
type Paint interface {
	Base() *PaintBase
}

// PaintBase carries the fields shared by every paint.
type PaintBase struct {
	Type    PaintType `json:"type"`
	Visible bool      `json:"visible"`
	Opacity float64   `json:"opacity"`
}

func (p *PaintBase) Base() *PaintBase { return p }

type SolidPaint struct {
	PaintBase
	Color Color `json:"color"`
}

// GradientPaint covers the four gradient discriminators.
type GradientPaint struct {
	PaintBase
}

type EmojiPaint struct {
	PaintBase
}

type ScaleMode string

const (
	ScaleFill    ScaleMode = "FILL"
	ScaleFit     ScaleMode = "FIT"
	ScaleTile    ScaleMode = "TILE"
	ScaleStretch ScaleMode = "STRETCH"
)

// ImageRefKind tells whether an image paint references a still image or a GIF.
type ImageRefKind string

const (
	ImageRefImage ImageRefKind = "image"
	ImageRefGIF   ImageRefKind = "gif"
)

// ImageRef is exactly one of an image hash or a GIF hash.
type ImageRef struct {
	Kind ImageRefKind `json:"kind"`
	Ref  string       `json:"ref"`
}

type ImagePaint struct {
	PaintBase
	ScaleMode      ScaleMode  `json:"scaleMode"`
	ImageTransform *Transform `json:"imageTransform,omitempty"`
	ScalingFactor  *float64   `json:"scalingFactor,omitempty"`
	Rotation       float64    `json:"rotation"`
	Ref            ImageRef   `json:"ref"`
}
