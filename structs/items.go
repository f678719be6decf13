package structs

//*******************************************
// graph structs
//*******************************************

type Coord [2]float32

type Node struct {
	Loc Coord
}

type Edge struct {
	NodeA int32
	NodeB int32
}

//*******************************************
// grid structs
//*******************************************

// A cell of an implicit grid graph, addressed by zero-based
// row and column.
type Cell struct {
	Row int32
	Col int32
}
