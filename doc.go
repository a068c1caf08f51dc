// Package calcium implements a line-at-a-time calculator for integer and
// arbitrary-precision real expressions.
//
// A Context evaluates one line at a time with an operator-precedence engine,
// so there is no parse tree: "2 + 3 * 4" is 14, "2 ** 3 ** 2" is 512, and
// "-2 ** 2" is 4, since prefix operators bind tightest. Integers stay integers
// until they meet a real; "7 / 2" is 3, but "7 / 2.0" is 3.5.
//
// Variables are created by assignment, as in "x = 5", and persist in the
// context's symbol table across lines. The C-like operators include compound
// assignment, prefix and postfix ++ and --, comparisons, bitwise operators on
// integers, and logical operators, which may also be written as the words
// and, or, not, mod, and xor.
//
package calcium
