package bsdelta

// sufBucketSort performs the initial counting sort of the doubling-step
// suffix sort: I is filled with suffix-array positions grouped by bucket,
// sign-tagging fully-resolved singleton runs with -1 as it goes. V and I
// must both have length n+1; numBuckets is the key-space size implied by
// the packed initial keys in V (0x10001 for 16-bit keys, 0x1000002 for
// 24-bit keys).
func sufBucketSort(V, I []soff, n soff, numBuckets uint32) {
	b := make([]soff, numBuckets)
	for i := n - 1; i >= 0; i-- {
		c := V[i]
		V[i] = b[c]
		b[c] = i + 1
	}
	i := n
	for j := soff(numBuckets) - 1; i > 0; j-- {
		d, g := b[j], i
		for d != 0 {
			c := d - 1
			d = V[c]
			V[c] = g
			if d == 0 && g == i {
				I[i] = -1
			} else {
				I[i] = c
			}
			i--
		}
	}
	V[n] = 0
	I[0] = -1
}

// sufSplit is the Bentley-McIlroy three-way partition used by one doubling
// pass: it sorts the positive (unresolved) run I[start:start+length] by the
// key V[I[k]+h], recursing on the partitions that remain unresolved and
// sign-tagging (writing -runLength) the ones that become fully resolved.
func sufSplit(I, V []soff, start, length, h soff) {
	if length < 16 {
		for k := start; k < start+length; {
			j := soff(1)
			x := V[I[k]+h]
			i := soff(1)
			for ; k+i < start+length; i++ {
				if V[I[k+i]+h] < x {
					x = V[I[k+i]+h]
					j = 0
				}
				if V[I[k+i]+h] == x {
					I[k+j], I[k+i] = I[k+i], I[k+j]
					j++
				}
			}
			for i = 0; i < j; i++ {
				V[I[k+i]] = k + j - 1
			}
			if j == 1 {
				I[k] = -1
			}
			k += j
		}
		return
	}

	x := V[I[start+length/2]+h]
	var jj, kk soff
	for i := start; i < start+length; i++ {
		if V[I[i]+h] < x {
			jj++
		}
		if V[I[i]+h] == x {
			kk++
		}
	}
	jj += start
	kk += jj

	i, j, k := start, soff(0), soff(0)
	for i < jj {
		switch {
		case V[I[i]+h] < x:
			i++
		case V[I[i]+h] == x:
			I[i], I[jj+j] = I[jj+j], I[i]
			j++
		default:
			I[i], I[kk+k] = I[kk+k], I[i]
			k++
		}
	}
	for jj+j < kk {
		if V[I[jj+j]+h] == x {
			j++
		} else {
			I[jj+j], I[kk+k] = I[kk+k], I[jj+j]
			k++
		}
	}

	if jj > start {
		sufSplit(I, V, start, jj-start, h)
	}
	for i := soff(0); i < kk-jj; i++ {
		V[I[jj+i]] = kk - 1
	}
	if jj == kk-1 {
		I[jj] = -1
	}
	if start+length > kk {
		sufSplit(I, V, kk, start+length-kk, h)
	}
}
