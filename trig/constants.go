package trig

// =============================================================================
// Taylor coefficients for sin and cos on [-π/4, π/4]
// =============================================================================
//
// Written as exact rational expressions so each factorial reciprocal is
// rounded exactly once, at compile time, to the target precision.

// Float64 coefficients for Sin
// sin(r) ≈ r * (1 + c3*r² + c5*r⁴ + c7*r⁶ + c9*r⁸ + c11*r¹⁰)
var (
	sinC3_f64  float64 = -1.0 / (2 * 3)                                   // -1/3!
	sinC5_f64  float64 = 1.0 / (2 * 3 * 4 * 5)                            // 1/5!
	sinC7_f64  float64 = -1.0 / (2 * 3 * 4 * 5 * 6 * 7)                   // -1/7!
	sinC9_f64  float64 = 1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8 * 9)            // 1/9!
	sinC11_f64 float64 = -1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8 * 9 * 10 * 11) // -1/11!
)

// Float64 coefficients for Cos
// cos(r) ≈ 1 + c2*r² + c4*r⁴ + c6*r⁶ + c8*r⁸ + c10*r¹⁰
var (
	cosC2_f64  float64 = -1.0 / 2                                    // -1/2!
	cosC4_f64  float64 = 1.0 / (2 * 3 * 4)                           // 1/4!
	cosC6_f64  float64 = -1.0 / (2 * 3 * 4 * 5 * 6)                  // -1/6!
	cosC8_f64  float64 = 1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8)           // 1/8!
	cosC10_f64 float64 = -1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8 * 9 * 10) // -1/10!
)

// Float32 coefficients for Sin
var (
	sinC3_f32  float32 = -1.0 / (2 * 3)                                   // -1/3!
	sinC5_f32  float32 = 1.0 / (2 * 3 * 4 * 5)                            // 1/5!
	sinC7_f32  float32 = -1.0 / (2 * 3 * 4 * 5 * 6 * 7)                   // -1/7!
	sinC9_f32  float32 = 1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8 * 9)            // 1/9!
	sinC11_f32 float32 = -1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8 * 9 * 10 * 11) // -1/11!
)

// Float32 coefficients for Cos
var (
	cosC2_f32  float32 = -1.0 / 2                                    // -1/2!
	cosC4_f32  float32 = 1.0 / (2 * 3 * 4)                           // 1/4!
	cosC6_f32  float32 = -1.0 / (2 * 3 * 4 * 5 * 6)                  // -1/6!
	cosC8_f32  float32 = 1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8)           // 1/8!
	cosC10_f32 float32 = -1.0 / (2 * 3 * 4 * 5 * 6 * 7 * 8 * 9 * 10) // -1/10!
)

var (
	trigOne_f64 float64 = 1.0
	trigOne_f32 float32 = 1.0
)
