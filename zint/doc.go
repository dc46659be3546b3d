// Package zint provides a small signed-integer algebra over structurally
// distinguishable values.
//
// This package contains the leaf layer of the repository. All other packages
// import zint; zint imports nothing internal. Values are built from three
// canonical shapes:
//
//   - Zero: the value 0
//   - successor of a non-negative value: the positive naturals
//   - negation of a strictly positive value: the negative integers
//
// Key design constraints:
//   - Every integer has exactly one representation. There is no negation of
//     zero and no nested negation; Negate, Add, and Sub always return the
//     canonical shape, so canonical values compare correctly with ==.
//   - Each non-zero value carries its precomputed ordinal, making Ordinal()
//     O(1) regardless of structural depth.
//   - Malformed construction (successor of a negative value) is an internal
//     invariant violation and panics; it is not reachable through the
//     public operations.
package zint
