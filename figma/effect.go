package figma

// EffectType is the discriminator of an effect.
type EffectType string

const (
	EffectInnerShadow    EffectType = "INNER_SHADOW"
	EffectDropShadow     EffectType = "DROP_SHADOW"
	EffectLayerBlur      EffectType = "LAYER_BLUR"
	EffectBackgroundBlur EffectType = "BACKGROUND_BLUR"
)

// EffectTypes lists every effect discriminator the decoder handles.
func EffectTypes() []EffectType {
	return []EffectType{EffectInnerShadow, EffectDropShadow, EffectLayerBlur, EffectBackgroundBlur}
}

// Effect is a visual effect on a vector node. The concrete type always
// matches Base().Type.
type Effect interface {
	Base() *EffectBase
}

// EffectBase carries the fields shared by every effect. LAYER_BLUR and
// BACKGROUND_BLUR decode to *EffectBase itself.
type EffectBase struct {
	Type    EffectType `json:"type"`
	Visible bool       `json:"visible"`
	Radius  float64    `json:"radius"`
}

func (e *EffectBase) Base() *EffectBase { return e }

// ShadowEffect is an INNER_SHADOW and the level shared by DropShadowEffect.
type ShadowEffect struct {
	EffectBase
	Color     Color     `json:"color"`
	BlendMode BlendMode `json:"blendMode"`
	Offset    Vector    `json:"offset"`
	Spread    float64   `json:"spread"`
}

type DropShadowEffect struct {
	ShadowEffect
	ShowShadowBehindNode bool `json:"showShadowBehindNode"`
}
