/*
go-jumptrack tracks people across video frames from object detector output and
classifies when each tracked person is jumping.

Detections for each frame are filtered by class, confidence and an optional
zone, then associated with existing tracks by IoU overlap and optimal linear
assignment.  The vertical movement of each matched track is accumulated to
detect the onset of a jump.

See example code and usage in the example subdirectory.
*/
package jumptrack
