package figma

func effectRoutines() map[EffectType]func(*fields) Effect {
	blur := func(f *fields) Effect {
		e := &EffectBase{}
		decodeEffectBase(f, e)
		return e
	}
	return map[EffectType]func(*fields) Effect{
		EffectInnerShadow: func(f *fields) Effect {
			e := &ShadowEffect{}
			decodeShadow(f, e)
			return e
		},
		EffectDropShadow: func(f *fields) Effect {
			e := &DropShadowEffect{}
			decodeDropShadow(f, e)
			return e
		},
		EffectLayerBlur:      blur,
		EffectBackgroundBlur: blur,
	}
}

func decodeEffectBase(f *fields, e *EffectBase) {
	e.Type = EffectType(f.String("type"))
	e.Visible = f.Bool("visible")
	e.Radius = f.Float("radius")
}

func decodeShadow(f *fields, e *ShadowEffect) {
	e.Color = decodeColor(f.Object("color"))
	e.BlendMode = BlendMode(f.String("blendMode"))
	e.Offset = decodeVectorValue(f.Object("offset"))
	e.Spread = f.FloatOr("spread", 0)
	decodeEffectBase(f, &e.EffectBase)
}

func decodeDropShadow(f *fields, e *DropShadowEffect) {
	e.ShowShadowBehindNode = f.Bool("showShadowBehindNode")
	decodeShadow(f, &e.ShadowEffect)
}
