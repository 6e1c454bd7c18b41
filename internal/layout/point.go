package layout

// Point is an integer grid coordinate, shared by the extractor's flood-fill
// output and the distance engine's cell addressing.
type Point struct {
	X, Y int
}
