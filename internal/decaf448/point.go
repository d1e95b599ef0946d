// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package decaf448

// point is an Ed448-Goldilocks group element in extended twisted Edwards coordinates
// (X:Y:T:Z), grounded on the "Twisted Edwards Curves Revisited" addition/doubling formulas
// (a = 1 for the untwisted curve Decaf448 is built on).
type point struct {
	x, y, t, z fieldElt
}

func newPoint() *point {
	var p point

	p.x.f, p.y.f, p.t.f, p.z.f = coordField, coordField, coordField, coordField
	p.x.zero()
	p.t.zero()
	p.y.one()
	p.z.one()

	return &p
}

func (p *point) set(q *point) *point {
	p.x.setElt(&q.x)
	p.y.setElt(&q.y)
	p.t.setElt(&q.t)
	p.z.setElt(&q.z)

	return p
}

func (p *point) copy() *point {
	return newPoint().set(p)
}

func (p *point) negate(q *point) *point {
	p.x.neg(&q.x)
	p.y.setElt(&q.y)
	p.t.neg(&q.t)
	p.z.setElt(&q.z)

	return p
}

func (p *point) isEqual(q *point) int {
	var f0, f1 fieldElt

	f0.mul(&p.x, &q.y)
	f1.mul(&p.y, &q.x)
	res := f0.equal(&f1)

	f0.mul(&p.y, &q.y)
	f1.mul(&p.x, &q.x)
	res |= f0.equal(&f1)

	return res
}

func (p *point) isIdentity() bool {
	return p.isEqual(newPoint()) == 1
}

// double sets p to q+q, per the dedicated doubling formula for a=1 twisted Edwards curves.
func (p *point) double(q *point) *point {
	var a, b, c, dd, e, f, g, h fieldElt

	a.sq(&q.x)
	b.sq(&q.y)
	c.sq(&q.z)
	c.add(&c, &c)
	dd.setElt(&a)

	e.add(&q.x, &q.y)
	e.sq(&e)
	e.sub(&e, &a)
	e.sub(&e, &b)

	g.add(&dd, &b)
	f.sub(&g, &c)
	h.sub(&dd, &b)

	p.x.mul(&e, &f)
	p.y.mul(&g, &h)
	p.t.mul(&e, &h)
	p.z.mul(&f, &g)

	return p
}

// add sets p to q+r, per the unified addition formula for a=1 twisted Edwards curves.
func (p *point) add(q, r *point) *point {
	var a, b, c, dd, e, f, g, h, ee, ff fieldElt

	a.mul(&q.x, &r.x)
	b.mul(&q.y, &r.y)
	c.mul(&r.t, &q.t)
	c.mul(&c, d)
	dd.mul(&q.z, &r.z)

	ee.add(&q.x, &q.y)
	ff.add(&r.x, &r.y)
	e.mul(&ee, &ff)
	e.sub(&e, &a)
	e.sub(&e, &b)

	f.sub(&dd, &c)
	g.add(&dd, &c)
	h.sub(&b, &a)

	p.x.mul(&e, &f)
	p.y.mul(&g, &h)
	p.t.mul(&e, &h)
	p.z.mul(&f, &g)

	return p
}

func (p *point) subtract(q, r *point) *point {
	return p.add(q, newPoint().negate(r))
}

// scalarMult sets p to s*q using a plain double-and-add ladder: Decaf448 carries no external
// scalar-multiplication library to delegate to, unlike the Ristretto255 core's reliance on
// filippo.io/edwards25519.
func (p *point) scalarMult(s *fieldElt, q *point) *point {
	r0 := newPoint()
	r1 := q.copy()

	for i := s.v.BitLen() - 1; i >= 0; i-- {
		if s.v.Bit(i) == 0 {
			r1.add(r1, r0)
			r0.double(r0)
		} else {
			r0.add(r0, r1)
			r1.double(r1)
		}
	}

	return p.set(r0)
}
