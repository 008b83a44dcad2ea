package postprocess

// BoxRect are the dimensions of the bounding box of a detect object in
// frame pixel space
type BoxRect struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// DetectResult defines the attributes of a single object detected
type DetectResult struct {
	// Class is the line number in the labels file the Model was trained on
	// defining the Class of the detected object, or -1 if the label is not
	// in the labels file
	Class int
	// Label is the class name reported by the detector
	Label string
	// Box are the bounding box dimensions of the object location
	Box BoxRect
	// Probability is the confidence score of the object detected
	Probability float32
	// ID is a unique ID assigned to the detection result
	ID int64
}
