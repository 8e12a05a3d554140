package pattern

import "math"

// perm is Ken Perlin's reference permutation of 0..255. It is the single
// shared read-only table behind the Noise kind and must never be mutated
// after initialization (concurrent reads are safe).
var perm = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// hash folds lattice coordinates through the permutation table.
func hash(x, y int) uint8 {
	return perm[(int(perm[x&255])+y)&255]
}

// grad2 projects the offset (dx,dy) onto one of eight fixed gradients.
func grad2(h uint8, dx, dy float64) float64 {
	switch h & 7 {
	case 0:
		return dx + dy
	case 1:
		return dx - dy
	case 2:
		return -dx + dy
	case 3:
		return -dx - dy
	case 4:
		return dx
	case 5:
		return -dx
	case 6:
		return dy
	default:
		return -dy
	}
}

// fade is the quintic smoothstep 6t⁵−15t⁴+10t³.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp interpolates linearly between a and b.
func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// perlin2 evaluates one octave of 2D gradient noise at (x,y).
// Output lies in roughly [-1,1]; it is a pure function of (x,y) and the
// fixed permutation table.
func perlin2(x, y float64) float64 {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	dx, dy := x-float64(x0), y-float64(y0)
	u, v := fade(dx), fade(dy)

	n00 := grad2(hash(x0, y0), dx, dy)
	n10 := grad2(hash(x0+1, y0), dx-1, dy)
	n01 := grad2(hash(x0, y0+1), dx, dy-1)
	n11 := grad2(hash(x0+1, y0+1), dx-1, dy-1)

	return lerp(lerp(n00, n10, u), lerp(n01, n11, u), v)
}

// fillNoise writes the fractal sum of gradient-noise octaves: amplitude
// halves and frequency doubles per octave, and the sum is normalized by
// the total amplitude before remapping to [0,1].
func fillNoise(f Field, octaves int, scale float64) {
	if octaves < 1 {
		octaves = 1
	}
	w, h := f.Width(), f.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum, amp, freq, ampSum := 0.0, 1.0, 1.0, 0.0
			for o := 0; o < octaves; o++ {
				sum += amp * perlin2(float64(x)*scale*freq, float64(y)*scale*freq)
				ampSum += amp
				amp *= 0.5
				freq *= 2
			}
			f[y][x] = (sum/ampSum + 1) / 2
		}
	}
}
