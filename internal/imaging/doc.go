// Package imaging provides image loading and preprocessing for bubble-sheet
// recognition.
//
// The package turns a photographed answer sheet into a BinaryMap, a boolean
// grid where marked (dark) regions are foreground. The preprocessing chain is:
//
//  1. Grayscale conversion
//  2. Gaussian blur to suppress sensor and print noise
//  3. Adaptive local-mean thresholding with binary inversion
//
// Adaptive thresholding computes a separate threshold for each pixel from its
// local neighborhood, so uneven lighting across a photographed sheet does not
// bias detection the way a single global threshold would.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Preprocess is a pure
// function of its inputs; BinaryMap values are not mutated after Preprocess
// returns and may be shared between goroutines.
package imaging
