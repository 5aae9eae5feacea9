package piece

// Mask literals.
const (
	x = true
	z = false
)

var catalog = [...]Piece{
	{
		Mask: []bool{
			z, z, x,
			x, x, x,
			z, z, z,
		},
		Size: 3,
		Kind: L,
	},
	{
		Mask: []bool{
			z, x, x,
			x, x, z,
			z, z, z,
		},
		Size: 3,
		Kind: S,
	},
	{
		Mask: []bool{
			x, x, z,
			z, x, x,
			z, z, z,
		},
		Size: 3,
		Kind: Z,
	},
	{
		Mask: []bool{
			z, x, z,
			x, x, x,
			z, z, z,
		},
		Size: 3,
		Kind: T,
	},
	{
		Mask: []bool{
			x, z, z,
			x, x, x,
			z, z, z,
		},
		Size: 3,
		Kind: J,
	},
	{
		Mask: []bool{
			x, x,
			x, x,
		},
		Size: 2,
		Kind: O,
	},
	{
		Mask: []bool{
			z, z, z, z,
			x, x, x, x,
			z, z, z, z,
			z, z, z, z,
		},
		Size: 4,
		Kind: I,
	},
}

// Count is the number of shapes in the catalog.
const Count = len(catalog)

// Source is the subset of *rand.Rand needed to pick pieces.
type Source interface {
	Intn(n int) int
}

// Shape returns a fresh copy of the catalog shape for k, positioned at the origin.
func Shape(k Kind) Piece {
	return catalog[k].Clone()
}

// Shapes returns copies of every catalog shape in Kind order.
func Shapes() []Piece {
	ps := make([]Piece, 0, Count)
	for i := range catalog {
		ps = append(ps, catalog[i].Clone())
	}
	return ps
}

// Rand picks a shape uniformly from the catalog.
func Rand(r Source) Piece {
	return Shape(Kind(r.Intn(Count)))
}
