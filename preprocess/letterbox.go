package preprocess

import "github.com/swdee/go-jumptrack/postprocess"

// Letterbox holds the scaling between a source video frame and the letter
// boxed model input a detector ran on.  It maps detection boxes made in the
// model input space back onto the source frame
type Letterbox struct {
	// srcWidth is the width of the source image
	srcWidth int
	// srcHeight is the height of the source image
	srcHeight int
	// destWidth is the width of the model input
	destWidth int
	// destHeight is the height of the model input
	destHeight int
	// letterbox parameters used in scaling
	xPad  int
	yPad  int
	scale float64
}

// NewLetterbox returns the letterbox for scaling a source image of srcWidth
// x srcHeight into a model input of destWidth x destHeight whilst
// maintaining image aspect
func NewLetterbox(srcWidth, srcHeight, destWidth, destHeight int) *Letterbox {
	l := &Letterbox{
		srcWidth:   srcWidth,
		srcHeight:  srcHeight,
		destWidth:  destWidth,
		destHeight: destHeight,
	}

	l.preCalc()

	return l
}

// preCalc the scaling factor and padding
func (l *Letterbox) preCalc() {

	resizeW := l.destWidth
	resizeH := l.destHeight

	scaleW := float64(l.destWidth) / float64(l.srcWidth)
	scaleH := float64(l.destHeight) / float64(l.srcHeight)
	l.scale = scaleH

	if scaleW < scaleH {
		l.scale = scaleW
		resizeH = int(float64(l.srcHeight) * l.scale)
	} else {
		resizeW = int(float64(l.srcWidth) * l.scale)
	}

	l.yPad = (l.destHeight - resizeH) / 2
	l.xPad = (l.destWidth - resizeW) / 2
}

// ScaleFactor returns the scale from source to model input
func (l *Letterbox) ScaleFactor() float64 {
	return l.scale
}

// XPad returns the x padding of the model input
func (l *Letterbox) XPad() int {
	return l.xPad
}

// YPad returns the y padding of the model input
func (l *Letterbox) YPad() int {
	return l.yPad
}

// ToSource converts a box in model input coordinates to source image
// coordinates, clamped to the source image
func (l *Letterbox) ToSource(box postprocess.BoxRect) postprocess.BoxRect {
	return postprocess.BoxRect{
		Left:   clamp((box.Left-float64(l.xPad))/l.scale, 0, float64(l.srcWidth)),
		Top:    clamp((box.Top-float64(l.yPad))/l.scale, 0, float64(l.srcHeight)),
		Right:  clamp((box.Right-float64(l.xPad))/l.scale, 0, float64(l.srcWidth)),
		Bottom: clamp((box.Bottom-float64(l.yPad))/l.scale, 0, float64(l.srcHeight)),
	}
}

// Apply converts the boxes of all detections in place
func (l *Letterbox) Apply(dets []postprocess.DetectResult) {
	for i := range dets {
		dets[i].Box = l.ToSource(dets[i].Box)
	}
}

// clamp restricts val to the range min and max
func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}

	if val > max {
		return max
	}

	return val
}
