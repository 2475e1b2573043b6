// Package types defines the shared vocabulary of nbtkit: the tag type sum
// type, typed errors with stable categories, decode limits and the option
// structs accepted by the codec and the save path.
//
// Design goals:
//   - An explicit TagInvalid variant instead of offset arithmetic between a
//     public and a wire enumeration.
//   - Typed errors so callers branch on intent rather than text.
//   - Zero-value options select safe defaults.
//
// This package has no dependencies beyond the standard library.
package types
