// Package zkp implements the Chaum–Pedersen sigma protocol over a
// prime-order subgroup of Z_p^*. A prover that knows a secret exponent x
// behind the commitments y1 = alpha^x and y2 = beta^x convinces a verifier
// of that knowledge in three moves (commit, challenge, response) without
// revealing x.
package zkp

import "math/big"

// Group describes the algebraic setting of the protocol: a large prime
// modulus P, the prime order Q of the working subgroup, and two generators
// Alpha and Beta of that subgroup (Beta = Alpha^e mod P for some exponent).
//
// A Group is immutable after construction and safe for concurrent use.
// The parameters are public; only the exponents handled by the prover are
// secret.
type Group struct {
	P     *big.Int
	Q     *big.Int
	Alpha *big.Int
	Beta  *big.Int
}

// Exponentiate returns base^exp mod modulus.
func Exponentiate(base, exp, modulus *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, modulus)
}

// Commit computes the registration commitments for the secret x:
//
//	y1 = alpha^x mod p
//	y2 = beta^x mod p
func (g *Group) Commit(x *big.Int) (y1, y2 *big.Int) {
	y1 = Exponentiate(g.Alpha, x, g.P)
	y2 = Exponentiate(g.Beta, x, g.P)
	return y1, y2
}

// CommitRandom computes the per-attempt commitments for the nonce k,
// which the caller must draw uniformly from [0, q):
//
//	r1 = alpha^k mod p
//	r2 = beta^k mod p
func (g *Group) CommitRandom(k *big.Int) (r1, r2 *big.Int) {
	r1 = Exponentiate(g.Alpha, k, g.P)
	r2 = Exponentiate(g.Beta, k, g.P)
	return r1, r2
}

// Respond computes the prover's answer s = k - c*x (mod q).
//
// The subtraction is done over the integers first, so the sign must be
// handled explicitly: when k < c*x the result is taken as
// q - ((c*x - k) mod q). Note that this branch yields q itself when
// c*x - k is an exact multiple of q; verification is unaffected since
// g^q = 1 (mod p).
func (g *Group) Respond(k, c, x *big.Int) *big.Int {
	cx := new(big.Int).Mul(c, x)
	if k.Cmp(cx) >= 0 {
		return new(big.Int).Mod(new(big.Int).Sub(k, cx), g.Q)
	}
	d := new(big.Int).Mod(new(big.Int).Sub(cx, k), g.Q)
	return new(big.Int).Sub(g.Q, d)
}

// Verify checks the response s against the commitments and the challenge:
//
//	alpha^s * y1^c = r1 (mod p)
//	beta^s  * y2^c = r2 (mod p)
//
// Both equations are evaluated unconditionally so the running time does
// not reveal which half failed.
func (g *Group) Verify(r1, r2, y1, y2, c, s *big.Int) bool {
	l1 := new(big.Int).Mul(Exponentiate(g.Alpha, s, g.P), Exponentiate(y1, c, g.P))
	ok1 := r1.Cmp(l1.Mod(l1, g.P)) == 0

	l2 := new(big.Int).Mul(Exponentiate(g.Beta, s, g.P), Exponentiate(y2, c, g.P))
	ok2 := r2.Cmp(l2.Mod(l2, g.P)) == 0

	return ok1 && ok2
}
