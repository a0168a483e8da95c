package figma

func paintRoutines() map[PaintType]func(*fields) Paint {
	gradient := func(f *fields) Paint {
		p := &GradientPaint{}
		decodePaintBase(f, &p.PaintBase)
		return p
	}
	return map[PaintType]func(*fields) Paint{
		PaintSolid: func(f *fields) Paint {
			p := &SolidPaint{}
			decodeSolidPaint(f, p)
			return p
		},
		PaintImage: func(f *fields) Paint {
			p := &ImagePaint{}
			decodeImagePaint(f, p)
			return p
		},
		PaintEmoji: func(f *fields) Paint {
			p := &EmojiPaint{}
			decodePaintBase(f, &p.PaintBase)
			return p
		},
		PaintGradientLinear:  gradient,
		PaintGradientRadial:  gradient,
		PaintGradientAngular: gradient,
		PaintGradientDiamond: gradient,
	}
}

func decodePaintBase(f *fields, p *PaintBase) {
	p.Type = PaintType(f.String("type"))
	p.Visible = f.BoolOr("visible", true)
	p.Opacity = f.FloatOr("opacity", 1)
}

func decodeSolidPaint(f *fields, p *SolidPaint) {
	p.Color = decodeColor(f.Object("color"))
	decodePaintBase(f, &p.PaintBase)
}

func decodeImagePaint(f *fields, p *ImagePaint) {
	p.ScaleMode = ScaleMode(f.String("scaleMode"))
	p.ImageTransform = f.OptTransform("imageTransform")
	p.ScalingFactor = f.OptFloat("scalingFactor")
	p.Rotation = f.FloatOr("rotation", 0)
	switch {
	case f.has("imageRef"):
		p.Ref = ImageRef{Kind: ImageRefImage, Ref: f.String("imageRef")}
	case f.has("gifRef"):
		p.Ref = ImageRef{Kind: ImageRefGIF, Ref: f.String("gifRef")}
	default:
		f.missing("imageRef")
	}
	decodePaintBase(f, &p.PaintBase)
}
