package svgvalue

// ElementId, AttributeId and ValueId map a closed set of ASCII SVG names to
// small ordinals. Lookup is exact-match and case-sensitive. A Go map over a
// small fixed key set serves here in place of a precomputed perfect hash;
// it compiles to effectively the same thing and keeps this file readable.

// ElementId identifies a recognized SVG element name.
type ElementId int

const (
	ElemSvg ElementId = iota
	ElemG
	ElemDefs
	ElemSymbol
	ElemUse
	ElemSwitch
	ElemMarker
	ElemLinearGradient
	ElemRadialGradient
	ElemPattern
	ElemStop
	ElemPath
	ElemRect
	ElemCircle
	ElemEllipse
	ElemLine
	ElemPolyline
	ElemPolygon
	ElemText
	ElemTSpan
	ElemTextPath
	ElemImage
	ElemForeignObject
	ElemStyle
)

var elementNames = map[string]ElementId{
	"svg":            ElemSvg,
	"g":              ElemG,
	"defs":           ElemDefs,
	"symbol":         ElemSymbol,
	"use":            ElemUse,
	"switch":         ElemSwitch,
	"marker":         ElemMarker,
	"linearGradient": ElemLinearGradient,
	"radialGradient": ElemRadialGradient,
	"pattern":        ElemPattern,
	"stop":           ElemStop,
	"path":           ElemPath,
	"rect":           ElemRect,
	"circle":         ElemCircle,
	"ellipse":        ElemEllipse,
	"line":           ElemLine,
	"polyline":       ElemPolyline,
	"polygon":        ElemPolygon,
	"text":           ElemText,
	"tspan":          ElemTSpan,
	"textPath":       ElemTextPath,
	"image":          ElemImage,
	"foreignObject":  ElemForeignObject,
	"style":          ElemStyle,
}

// LookupElementID returns the ElementId for an exact, case-sensitive local
// name, or ok=false if the name is not a recognized SVG element.
func LookupElementID(name string) (id ElementId, ok bool) {
	id, ok = elementNames[name]
	return id, ok
}

// AttributeId identifies a recognized SVG presentation or geometry
// attribute name.
type AttributeId int

const (
	AttrID AttributeId = iota

	// Presentation attributes.
	AttrAlignmentBaseline
	AttrBaselineShift
	AttrClipPath
	AttrClipRule
	AttrColor
	AttrColorInterpolation
	AttrColorInterpolationFilters
	AttrColorRendering
	AttrCursor
	AttrDirection
	AttrDisplay
	AttrDominantBaseline
	AttrFill
	AttrFillOpacity
	AttrFillRule
	AttrFilter
	AttrFloodColor
	AttrFloodOpacity
	AttrFontFamily
	AttrFontSize
	AttrFontSizeAdjust
	AttrFontStretch
	AttrFontStyle
	AttrFontVariant
	AttrFontWeight
	AttrImageRendering
	AttrLetterSpacing
	AttrLightingColor
	AttrMarkerEnd
	AttrMarkerMid
	AttrMarkerStart
	AttrMask
	AttrOpacity
	AttrOverflow
	AttrPaintOrder
	AttrPointerEvents
	AttrShapeRendering
	AttrStopColor
	AttrStopOpacity
	AttrStroke
	AttrStrokeDasharray
	AttrStrokeDashoffset
	AttrStrokeLinecap
	AttrStrokeLinejoin
	AttrStrokeMiterlimit
	AttrStrokeOpacity
	AttrStrokeWidth
	AttrTextAnchor
	AttrTextDecoration
	AttrTextOverflow
	AttrTextRendering
	AttrTransform
	AttrUnicodeBidi
	AttrVectorEffect
	AttrVisibility
	AttrWhiteSpace
	AttrWordSpacing
	AttrWritingMode

	// Geometry and per-element attributes.
	AttrD
	AttrPathLength
	AttrX
	AttrY
	AttrWidth
	AttrHeight
	AttrRx
	AttrRy
	AttrCx
	AttrCy
	AttrR
	AttrX1
	AttrY1
	AttrX2
	AttrY2
	AttrPoints
	AttrViewBox
	AttrPreserveAspectRatio
	AttrGradientUnits
	AttrGradientTransform
	AttrSpreadMethod
	AttrHref
	AttrOffset
	AttrPatternUnits
	AttrPatternContentUnits
	AttrPatternTransform
	AttrMarkerUnits
	AttrMarkerWidth
	AttrMarkerHeight
	AttrOrient
	AttrRefX
	AttrRefY
	AttrDx
	AttrDy
	AttrRotate
	AttrTextLength
	AttrLengthAdjust
	AttrStartOffset
	AttrMethod
	AttrSpacing
	AttrSide
	AttrStyle
)

var attributeNames = map[string]AttributeId{
	"id":                          AttrID,
	"alignment-baseline":          AttrAlignmentBaseline,
	"baseline-shift":              AttrBaselineShift,
	"clip-path":                   AttrClipPath,
	"clip-rule":                   AttrClipRule,
	"color":                       AttrColor,
	"color-interpolation":         AttrColorInterpolation,
	"color-interpolation-filters": AttrColorInterpolationFilters,
	"color-rendering":             AttrColorRendering,
	"cursor":                      AttrCursor,
	"direction":                   AttrDirection,
	"display":                     AttrDisplay,
	"dominant-baseline":           AttrDominantBaseline,
	"fill":                        AttrFill,
	"fill-opacity":                AttrFillOpacity,
	"fill-rule":                   AttrFillRule,
	"filter":                      AttrFilter,
	"flood-color":                 AttrFloodColor,
	"flood-opacity":               AttrFloodOpacity,
	"font-family":                 AttrFontFamily,
	"font-size":                   AttrFontSize,
	"font-size-adjust":            AttrFontSizeAdjust,
	"font-stretch":                AttrFontStretch,
	"font-style":                  AttrFontStyle,
	"font-variant":                AttrFontVariant,
	"font-weight":                 AttrFontWeight,
	"image-rendering":             AttrImageRendering,
	"letter-spacing":              AttrLetterSpacing,
	"lighting-color":              AttrLightingColor,
	"marker-end":                  AttrMarkerEnd,
	"marker-mid":                  AttrMarkerMid,
	"marker-start":                AttrMarkerStart,
	"mask":                        AttrMask,
	"opacity":                     AttrOpacity,
	"overflow":                    AttrOverflow,
	"paint-order":                 AttrPaintOrder,
	"pointer-events":              AttrPointerEvents,
	"shape-rendering":             AttrShapeRendering,
	"stop-color":                  AttrStopColor,
	"stop-opacity":                AttrStopOpacity,
	"stroke":                      AttrStroke,
	"stroke-dasharray":            AttrStrokeDasharray,
	"stroke-dashoffset":           AttrStrokeDashoffset,
	"stroke-linecap":              AttrStrokeLinecap,
	"stroke-linejoin":             AttrStrokeLinejoin,
	"stroke-miterlimit":           AttrStrokeMiterlimit,
	"stroke-opacity":              AttrStrokeOpacity,
	"stroke-width":                AttrStrokeWidth,
	"text-anchor":                 AttrTextAnchor,
	"text-decoration":             AttrTextDecoration,
	"text-overflow":               AttrTextOverflow,
	"text-rendering":              AttrTextRendering,
	"transform":                   AttrTransform,
	"unicode-bidi":                AttrUnicodeBidi,
	"vector-effect":               AttrVectorEffect,
	"visibility":                  AttrVisibility,
	"white-space":                 AttrWhiteSpace,
	"word-spacing":                AttrWordSpacing,
	"writing-mode":                AttrWritingMode,

	"d":                   AttrD,
	"pathLength":          AttrPathLength,
	"x":                   AttrX,
	"y":                   AttrY,
	"width":               AttrWidth,
	"height":              AttrHeight,
	"rx":                  AttrRx,
	"ry":                  AttrRy,
	"cx":                  AttrCx,
	"cy":                  AttrCy,
	"r":                   AttrR,
	"x1":                  AttrX1,
	"y1":                  AttrY1,
	"x2":                  AttrX2,
	"y2":                  AttrY2,
	"points":              AttrPoints,
	"viewBox":             AttrViewBox,
	"preserveAspectRatio": AttrPreserveAspectRatio,
	"gradientUnits":       AttrGradientUnits,
	"gradientTransform":   AttrGradientTransform,
	"spreadMethod":        AttrSpreadMethod,
	"href":                AttrHref,
	"offset":              AttrOffset,
	"patternUnits":        AttrPatternUnits,
	"patternContentUnits": AttrPatternContentUnits,
	"patternTransform":    AttrPatternTransform,
	"markerUnits":         AttrMarkerUnits,
	"markerWidth":         AttrMarkerWidth,
	"markerHeight":        AttrMarkerHeight,
	"orient":              AttrOrient,
	"refX":                AttrRefX,
	"refY":                AttrRefY,
	"dx":                  AttrDx,
	"dy":                  AttrDy,
	"rotate":              AttrRotate,
	"textLength":          AttrTextLength,
	"lengthAdjust":        AttrLengthAdjust,
	"startOffset":         AttrStartOffset,
	"method":              AttrMethod,
	"spacing":             AttrSpacing,
	"side":                AttrSide,
	"style":               AttrStyle,
}

// LookupAttributeID returns the AttributeId for an exact, case-sensitive
// local name, or ok=false if the name is not a recognized SVG attribute.
// Namespaced attributes never resolve to a core AttributeId; they pass
// through to the caller as XmlAttribute.
func LookupAttributeID(prefix, local string) (id AttributeId, ok bool) {
	if prefix != "" {
		return 0, false
	}
	id, ok = attributeNames[local]
	return id, ok
}

// ValueId identifies a recognized SVG presentation-attribute keyword value
// from a finite closed set.
type ValueId int

const (
	ValNone ValueId = iota
	ValInherit
	ValAuto
	ValNormal
	ValCurrentColor
	ValContextFill
	ValContextStroke
	ValVisible
	ValHidden
	ValCollapse
	ValLtr
	ValRtl
	ValBolder
	ValLighter

	// font-weight's numeric keyword values: these are returned as
	// predefined values, never as numbers.
	ValWeight100
	ValWeight200
	ValWeight300
	ValWeight400
	ValWeight500
	ValWeight600
	ValWeight700
	ValWeight800
	ValWeight900

	// font-size's keyword values.
	ValXXSmall
	ValXSmall
	ValSmall
	ValMedium
	ValLarge
	ValXLarge
	ValXXLarge
	ValLarger
	ValSmaller

	// Small closed keyword sets belonging to individual presentation
	// attributes (fill-rule/clip-rule, stroke-linecap, stroke-linejoin,
	// text-anchor, and the units/spread/adjust/method/side keywords used by
	// gradients, patterns, markers and text layout). Each lives in its own
	// lookup table below rather than genericValueNames, since none of these
	// strings are valid for any other attribute.
	ValNonzero
	ValEvenodd
	ValButt
	ValRound
	ValSquare
	ValMiter
	ValBevel
	ValStart
	ValMiddle
	ValEnd
	ValUserSpaceOnUse
	ValObjectBoundingBox
	ValStrokeWidth
	ValPad
	ValReflect
	ValRepeat
	ValSpacing
	ValSpacingAndGlyphs
	ValAlign
	ValStretch
	ValLeft
	ValRight
)

var genericValueNames = map[string]ValueId{
	"none":           ValNone,
	"inherit":        ValInherit,
	"auto":           ValAuto,
	"normal":         ValNormal,
	"currentColor":   ValCurrentColor,
	"context-fill":   ValContextFill,
	"context-stroke": ValContextStroke,
	"visible":        ValVisible,
	"hidden":         ValHidden,
	"collapse":       ValCollapse,
	"ltr":            ValLtr,
	"rtl":            ValRtl,
	"bolder":         ValBolder,
	"lighter":        ValLighter,
}

var fontWeightValueNames = map[string]ValueId{
	"100": ValWeight100,
	"200": ValWeight200,
	"300": ValWeight300,
	"400": ValWeight400,
	"500": ValWeight500,
	"600": ValWeight600,
	"700": ValWeight700,
	"800": ValWeight800,
	"900": ValWeight900,
}

var fontSizeValueNames = map[string]ValueId{
	"xx-small": ValXXSmall,
	"x-small":  ValXSmall,
	"small":    ValSmall,
	"medium":   ValMedium,
	"large":    ValLarge,
	"x-large":  ValXLarge,
	"xx-large": ValXXLarge,
	"larger":   ValLarger,
	"smaller":  ValSmaller,
}

// LookupValueID returns the ValueId for a generic enumerated keyword (the
// set shared across most presentation attributes: none, inherit, auto,
// normal, currentColor, context-fill, context-stroke, visible, hidden,
// collapse, ltr, rtl, bolder, lighter), or ok=false if name isn't one of
// them.
func LookupValueID(name string) (id ValueId, ok bool) {
	id, ok = genericValueNames[name]
	return id, ok
}

// LookupFontWeightValueID returns the ValueId for one of font-weight's
// numeric keyword strings ("100".."900").
func LookupFontWeightValueID(name string) (id ValueId, ok bool) {
	id, ok = fontWeightValueNames[name]
	return id, ok
}

// LookupFontSizeValueID returns the ValueId for one of font-size's keyword
// values (xx-small .. xx-large, larger, smaller).
func LookupFontSizeValueID(name string) (id ValueId, ok bool) {
	id, ok = fontSizeValueNames[name]
	return id, ok
}

var fillRuleValueNames = map[string]ValueId{
	"nonzero": ValNonzero,
	"evenodd": ValEvenodd,
}

// LookupFillRuleValueID returns the ValueId for fill-rule/clip-rule's
// keyword values (nonzero, evenodd).
func LookupFillRuleValueID(name string) (id ValueId, ok bool) {
	id, ok = fillRuleValueNames[name]
	return id, ok
}

var strokeLinecapValueNames = map[string]ValueId{
	"butt":   ValButt,
	"round":  ValRound,
	"square": ValSquare,
}

// LookupStrokeLinecapValueID returns the ValueId for stroke-linecap's
// keyword values (butt, round, square).
func LookupStrokeLinecapValueID(name string) (id ValueId, ok bool) {
	id, ok = strokeLinecapValueNames[name]
	return id, ok
}

var strokeLinejoinValueNames = map[string]ValueId{
	"miter": ValMiter,
	"round": ValRound,
	"bevel": ValBevel,
}

// LookupStrokeLinejoinValueID returns the ValueId for stroke-linejoin's
// keyword values (miter, round, bevel).
func LookupStrokeLinejoinValueID(name string) (id ValueId, ok bool) {
	id, ok = strokeLinejoinValueNames[name]
	return id, ok
}

var textAnchorValueNames = map[string]ValueId{
	"start":  ValStart,
	"middle": ValMiddle,
	"end":    ValEnd,
}

// LookupTextAnchorValueID returns the ValueId for text-anchor's keyword
// values (start, middle, end).
func LookupTextAnchorValueID(name string) (id ValueId, ok bool) {
	id, ok = textAnchorValueNames[name]
	return id, ok
}

var unitsValueNames = map[string]ValueId{
	"userSpaceOnUse":    ValUserSpaceOnUse,
	"objectBoundingBox": ValObjectBoundingBox,
}

// LookupUnitsValueID returns the ValueId for the gradientUnits/
// patternUnits/patternContentUnits/clipPathUnits/maskUnits keyword values.
func LookupUnitsValueID(name string) (id ValueId, ok bool) {
	id, ok = unitsValueNames[name]
	return id, ok
}

var markerUnitsValueNames = map[string]ValueId{
	"strokeWidth":    ValStrokeWidth,
	"userSpaceOnUse": ValUserSpaceOnUse,
}

// LookupMarkerUnitsValueID returns the ValueId for markerUnits's keyword
// values (strokeWidth, userSpaceOnUse).
func LookupMarkerUnitsValueID(name string) (id ValueId, ok bool) {
	id, ok = markerUnitsValueNames[name]
	return id, ok
}

var spreadMethodValueNames = map[string]ValueId{
	"pad":     ValPad,
	"reflect": ValReflect,
	"repeat":  ValRepeat,
}

// LookupSpreadMethodValueID returns the ValueId for spreadMethod's keyword
// values (pad, reflect, repeat).
func LookupSpreadMethodValueID(name string) (id ValueId, ok bool) {
	id, ok = spreadMethodValueNames[name]
	return id, ok
}

var lengthAdjustValueNames = map[string]ValueId{
	"spacing":          ValSpacing,
	"spacingAndGlyphs": ValSpacingAndGlyphs,
}

// LookupLengthAdjustValueID returns the ValueId for lengthAdjust's keyword
// values (spacing, spacingAndGlyphs).
func LookupLengthAdjustValueID(name string) (id ValueId, ok bool) {
	id, ok = lengthAdjustValueNames[name]
	return id, ok
}

var textPathMethodValueNames = map[string]ValueId{
	"align":   ValAlign,
	"stretch": ValStretch,
}

// LookupTextPathMethodValueID returns the ValueId for textPath's `method`
// keyword values (align, stretch).
func LookupTextPathMethodValueID(name string) (id ValueId, ok bool) {
	id, ok = textPathMethodValueNames[name]
	return id, ok
}

var textPathSideValueNames = map[string]ValueId{
	"left":  ValLeft,
	"right": ValRight,
}

// LookupTextPathSideValueID returns the ValueId for textPath's `side`
// keyword values (left, right).
func LookupTextPathSideValueID(name string) (id ValueId, ok bool) {
	id, ok = textPathSideValueNames[name]
	return id, ok
}
