package noise

// smoothstep is Perlin's 3t^2-2t^3 fade curve.
func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Noise2D returns deterministic value noise at (x,y), seeded by seed, in the
// range [-1,1]. Lattice corners are hashed and interpolated with a
// smoothstep fade; the same seed and coordinates always produce the same
// output.
func Noise2D(seed uint32, x, y float32) float32 {
	x0 := floorf(x)
	y0 := floorf(y)
	x1 := x0 + 1
	y1 := y0 + 1

	tx := smoothstep(x - x0)
	ty := smoothstep(y - y0)

	v00 := hashToUnit(hash32(seed, int32(x0), int32(y0), 0))
	v10 := hashToUnit(hash32(seed, int32(x1), int32(y0), 0))
	v01 := hashToUnit(hash32(seed, int32(x0), int32(y1), 0))
	v11 := hashToUnit(hash32(seed, int32(x1), int32(y1), 0))

	a := lerp(v00, v10, tx)
	b := lerp(v01, v11, tx)
	return lerp(a, b, ty)
}

// Noise3D returns deterministic value noise at (x,y,z), seeded by seed, in
// the range [-1,1], trilinearly interpolated across the eight surrounding
// lattice corners.
func Noise3D(seed uint32, x, y, z float32) float32 {
	x0 := floorf(x)
	y0 := floorf(y)
	z0 := floorf(z)
	x1, y1, z1 := x0+1, y0+1, z0+1

	tx := smoothstep(x - x0)
	ty := smoothstep(y - y0)
	tz := smoothstep(z - z0)

	c000 := hashToUnit(hash32(seed, int32(x0), int32(y0), int32(z0)))
	c100 := hashToUnit(hash32(seed, int32(x1), int32(y0), int32(z0)))
	c010 := hashToUnit(hash32(seed, int32(x0), int32(y1), int32(z0)))
	c110 := hashToUnit(hash32(seed, int32(x1), int32(y1), int32(z0)))
	c001 := hashToUnit(hash32(seed, int32(x0), int32(y0), int32(z1)))
	c101 := hashToUnit(hash32(seed, int32(x1), int32(y0), int32(z1)))
	c011 := hashToUnit(hash32(seed, int32(x0), int32(y1), int32(z1)))
	c111 := hashToUnit(hash32(seed, int32(x1), int32(y1), int32(z1)))

	c00 := lerp(c000, c100, tx)
	c10 := lerp(c010, c110, tx)
	c01 := lerp(c001, c101, tx)
	c11 := lerp(c011, c111, tx)

	c0 := lerp(c00, c10, ty)
	c1 := lerp(c01, c11, ty)

	return lerp(c0, c1, tz)
}

func floorf(v float32) float32 {
	i := float32(int32(v))
	if v < 0 && i != v {
		i--
	}
	return i
}

// FBMParams configures fractal Brownian motion. Zero values fall back to
// the documented defaults (octaves=4, gain=0.5, lacunarity=2.0).
type FBMParams struct {
	Octaves    int
	Gain       float32
	Lacunarity float32
}

func (p FBMParams) resolved() (octaves int, gain, lacunarity float32) {
	octaves = p.Octaves
	if octaves <= 0 {
		octaves = 4
	}
	gain = p.Gain
	if gain <= 0 {
		gain = 0.5
	}
	lacunarity = p.Lacunarity
	if lacunarity <= 0 {
		lacunarity = 2.0
	}
	return octaves, gain, lacunarity
}

// FBM2D sums octaves of Noise2D at growing frequency and decaying
// amplitude, normalized by the sum of amplitudes so the result stays in
// [-1,1] even if an intermediate octave underflows to zero amplitude.
func FBM2D(seed uint32, x, y float32, p FBMParams) float32 {
	octaves, gain, lacunarity := p.resolved()

	var sum, amp, freq, ampSum float32 = 0, 1, 1, 0
	for i := 0; i < octaves; i++ {
		sum += Noise2D(seed+uint32(i)*101, x*freq, y*freq) * amp
		ampSum += amp
		amp *= gain
		freq *= lacunarity
	}
	if ampSum == 0 {
		return 0
	}
	return sum / ampSum
}

// FBM3D is the 3D analog of FBM2D.
func FBM3D(seed uint32, x, y, z float32, p FBMParams) float32 {
	octaves, gain, lacunarity := p.resolved()

	var sum, amp, freq, ampSum float32 = 0, 1, 1, 0
	for i := 0; i < octaves; i++ {
		sum += Noise3D(seed+uint32(i)*101, x*freq, y*freq, z*freq) * amp
		ampSum += amp
		amp *= gain
		freq *= lacunarity
	}
	if ampSum == 0 {
		return 0
	}
	return sum / ampSum
}
