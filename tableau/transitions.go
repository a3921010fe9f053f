package tableau

// Pure GF(2) column transitions, one per Clifford gate. These mutate the
// matrices only; circuit recording is composed on top by the Apply methods so
// the transformation stays independently testable.

// hTransition swaps column q of the X and Z parts.
func hTransition(xs, zs [][]bool, q int) {
	for i := range xs {
		xs[i][q], zs[i][q] = zs[i][q], xs[i][q]
	}
}

// sTransition XORs column q of the X part into column q of the Z part.
func sTransition(xs, zs [][]bool, q int) {
	for i := range xs {
		zs[i][q] = zs[i][q] != xs[i][q]
	}
}

// swapTransition swaps columns q1 and q2 in both parts.
func swapTransition(xs, zs [][]bool, q1, q2 int) {
	for i := range xs {
		xs[i][q1], xs[i][q2] = xs[i][q2], xs[i][q1]
		zs[i][q1], zs[i][q2] = zs[i][q2], zs[i][q1]
	}
}

// cnotTransition applies the stabilizer update rule for CNOT(ctrl, tgt):
// x_tgt ^= x_ctrl, z_ctrl ^= z_tgt.
func cnotTransition(xs, zs [][]bool, ctrl, tgt int) {
	for i := range xs {
		xs[i][tgt] = xs[i][tgt] != xs[i][ctrl]
		zs[i][ctrl] = zs[i][ctrl] != zs[i][tgt]
	}
}
