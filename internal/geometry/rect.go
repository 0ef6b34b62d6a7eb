package geometry

// EnsurePositiveSize normalizes a rectangle given as an anchor and a
// possibly negative extent. For each axis with a negative extent the
// anchor is moved by that extent and the extent negated, so the result
// describes the same region with a non-negative size. Applying it twice
// gives the same result as applying it once.
func EnsurePositiveSize(pos, size Vec2D) (Vec2D, Vec2D) {
	if size.X < 0 {
		pos.X += size.X
		size.X = -size.X
	}
	if size.Y < 0 {
		pos.Y += size.Y
		size.Y = -size.Y
	}
	return pos, size
}
