// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package registry

import (
	"math/big"
	"math/bits"

	"github.com/pkg/errors"
)

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// mulDiv computes floor(a*b/c) with a 128-bit intermediate product.
func mulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, errors.Wrap(ErrArithmeticOverflow, "division by zero")
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= c {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%d * %d / %d", a, b, c)
	}
	q, _ := bits.Div64(hi, lo, c)
	return q, nil
}

func addUint64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%d + %d", a, b)
	}
	return sum, nil
}

func toUint64(v *big.Int) (uint64, error) {
	if v.Sign() < 0 || v.Cmp(maxUint64) > 0 {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "value %s does not fit into 64 bits", v)
	}
	return v.Uint64(), nil
}

func pow10(exp uint) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}
