/*
Package numprime is a number-theoretic library. The library features:

  - A generic, overflow-safe modular arithmetic kernel across every
    unsigned integer width from 8 to 128 bits, plus arbitrary precision.
  - Deterministic Miller-Rabin primality testing covering the full
    64-bit range.
  - 64-bit integer factorization combining trial division, Pollard's
    rho, and Shanks's SQUFOF.
  - Sieving, analytic prime-counting bounds, random prime generation,
    the Mobius function, and wheel-based next/prev-prime search.

The hard kernel lives in the core subpackage; primegen and factorization
build on it for sieving/counting/generation and big.Int-width
factorization respectively. This root package holds no code of its own.
*/
package numprime
