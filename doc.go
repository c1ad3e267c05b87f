// Package primespiral renders the integers on an Archimedean spiral with the
// primes highlighted.
//
// # Overview
//
// Integer i sits at angle sqrt(i)·2π and radius SpiralWidth·sqrt(i), which
// spaces consecutive integers evenly along the arm. Each integer carries a
// weight of 1 if it is prime and 0 otherwise, plus a small offset. The
// weighted points are binned into a Width×Height histogram centered on the
// origin, blurred with an 11×11 bump kernel exp(-(dx²+dy²)) and mapped to a
// two-color gradient.
//
// # Quick Start
//
//	cfg := primespiral.DefaultConfig() // 6000×6000, spiral width 1.5
//	res, err := primespiral.Generate(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Found %d prime numbers smaller than %d.\n", res.Primes, res.Bound)
//
// # Pipeline
//
// The stages live in internal packages and are pure functions of their input:
//   - sieve: primes below n, weight vector
//   - spiral: index -> point
//   - raster: 2D histogram into a float32 canvas
//   - filter: separable zero-padded "same" convolution
//   - color: intensity -> RGB gradient
//   - image: RGB8 buffer and PNG/BMP/TIFF encoders
//
// Elementwise stages run over row bands in parallel. The output does not
// depend on the number of workers.
//
// # Memory
//
// The default render holds about 9.7M points and weights, three 6000×6000
// float32 canvases (histogram, blur scratch, result) and the encoded image,
// roughly 1 GB at peak.
package primespiral

// Version is the current version of the generator.
const Version = "0.1.0"
