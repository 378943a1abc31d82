package field

// attract moves p a fixed fraction of the remaining distance toward its target
func attract(p *Particle, speed float64) {
	p.X += (p.TX - p.X) * speed
	p.Y += (p.TY - p.Y) * speed
}

// drift perturbs, damps and integrates the velocity, then clamps the position.
// Velocity is left untouched at the wall, so a particle can sit on an edge until
// the perturbation turns it back.
func drift(p *Particle, dvx, dvy, damping, lo, hiX, hiY float64) {
	p.VX += dvx
	p.VY += dvy

	p.VX *= damping
	p.VY *= damping

	p.X += p.VX
	p.Y += p.VY

	p.X = clamp(p.X, lo, hiX)
	p.Y = clamp(p.Y, lo, hiY)
}
