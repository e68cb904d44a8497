// Package kernel implements the single generic traversal algorithm: given
// an already ordinal-encoded, read-only buffer and an isa.Ops capability
// set, it tracks running min/max vectors in lockstep with a running index
// vector and reduces to (argmin, argmax).
package kernel

import "github.com/oisee/argminmax/pkg/isa"

// ArgMinMax runs the full segmented traversal over data (already encoded
// to ordinal values by pkg/ordinal) and returns absolute positions. data
// must be non-empty; that precondition is enforced by the public surface
// in package argminmax, never here.
func ArgMinMax[O isa.Signed](data []O, ops isa.Ops[O]) (minIdx, maxIdx int) {
	segment := ops.MaxIndex() + 1
	if segment <= 0 || segment > len(data) {
		segment = len(data)
	}

	var (
		haveResult bool
		bestMinIdx int
		bestMinVal O
		bestMaxIdx int
		bestMaxVal O
	)

	for base := 0; base < len(data); base += segment {
		end := base + segment
		if end > len(data) {
			end = len(data)
		}
		localMinIdx, localMinVal, localMaxIdx, localMaxVal := traverseSegment(data[base:end], ops)

		absMinIdx := base + localMinIdx
		absMaxIdx := base + localMaxIdx

		if !haveResult {
			bestMinIdx, bestMinVal = absMinIdx, localMinVal
			bestMaxIdx, bestMaxVal = absMaxIdx, localMaxVal
			haveResult = true
			continue
		}
		if localMinVal < bestMinVal || (localMinVal == bestMinVal && absMinIdx < bestMinIdx) {
			bestMinIdx, bestMinVal = absMinIdx, localMinVal
		}
		if localMaxVal > bestMaxVal || (localMaxVal == bestMaxVal && absMaxIdx < bestMaxIdx) {
			bestMaxIdx, bestMaxVal = absMaxIdx, localMaxVal
		}
	}

	return bestMinIdx, bestMaxIdx
}

// traverseSegment runs the chunked lane-parallel scan for one segment
// whose length never exceeds ops.MaxIndex()+1, so relative positions
// tracked in O-width index lanes never overflow.
func traverseSegment[O isa.Signed](data []O, ops isa.Ops[O]) (minIdx int, minVal O, maxIdx int, maxVal O) {
	n := len(data)
	lanes := ops.Lanes()
	m := n - n%lanes

	if m == 0 {
		return scalarArgMinMax(data, ops, 0)
	}

	// Scratch lanes live in fixed-size arrays sized for the widest lane
	// count (a 512-bit register of 8-bit elements), so the scan never
	// allocates.
	var scratch [7][64]O
	runningMinVal := scratch[0][:lanes]
	runningMaxVal := scratch[1][:lanes]
	runningMinIdx := scratch[2][:lanes]
	runningMaxIdx := scratch[3][:lanes]
	idx := scratch[4][:lanes]
	gtMask := scratch[5][:lanes]
	ltMask := scratch[6][:lanes]

	copy(runningMinVal, data[0:lanes])
	copy(runningMaxVal, data[0:lanes])
	copy(idx, ops.InitialIndex())
	copy(runningMinIdx, ops.InitialIndex())
	copy(runningMaxIdx, ops.InitialIndex())

	for base := lanes; base < m; base += lanes {
		chunk := data[base : base+lanes]

		ops.Add(idx, idx, ops.IndexIncrement())

		ops.CmpGT(gtMask, chunk, runningMaxVal)
		ops.CmpLT(ltMask, chunk, runningMinVal)

		ops.Blendv(runningMaxVal, runningMaxVal, chunk, gtMask)
		ops.Blendv(runningMaxIdx, runningMaxIdx, idx, gtMask)
		ops.Blendv(runningMinVal, runningMinVal, chunk, ltMask)
		ops.Blendv(runningMinIdx, runningMinIdx, idx, ltMask)
	}

	redMinIdx, redMinVal := ops.HorizMin(runningMinIdx, runningMinVal)
	redMaxIdx, redMaxVal := ops.HorizMax(runningMaxIdx, runningMaxVal)

	if m == n {
		return redMinIdx, redMinVal, redMaxIdx, redMaxVal
	}

	tailMinIdx, tailMinVal, tailMaxIdx, tailMaxVal := scalarArgMinMax(data[m:], ops, m)

	minIdx, minVal = redMinIdx, redMinVal
	if tailMinVal < minVal || (tailMinVal == minVal && tailMinIdx < minIdx) {
		minIdx, minVal = tailMinIdx, tailMinVal
	}
	maxIdx, maxVal = redMaxIdx, redMaxVal
	if tailMaxVal > maxVal || (tailMaxVal == maxVal && tailMaxIdx < maxIdx) {
		maxIdx, maxVal = tailMaxIdx, tailMaxVal
	}
	return minIdx, minVal, maxIdx, maxVal
}

// scalarArgMinMax is the plain single-pass scan used both for segments
// too short to fill one lane-width chunk and for the tail after the last
// full chunk. offset shifts returned indices into the segment's frame.
func scalarArgMinMax[O isa.Signed](data []O, _ isa.Ops[O], offset int) (minIdx int, minVal O, maxIdx int, maxVal O) {
	minIdx, maxIdx = offset, offset
	minVal, maxVal = data[0], data[0]
	for i := 1; i < len(data); i++ {
		v := data[i]
		if v < minVal {
			minVal = v
			minIdx = offset + i
		}
		if v > maxVal {
			maxVal = v
			maxIdx = offset + i
		}
	}
	return minIdx, minVal, maxIdx, maxVal
}
