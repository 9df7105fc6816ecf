/*-
 * Copyright 2003-2005 Colin Percival
 * Copyright 2004-2005 Michael Schroeder
 * All rights reserved
 *
 * Redistribution and use in source and binary forms, with or without
 * modification, are permitted providing that the following conditions
 * are met:
 * 1. Redistributions of source code must retain the above copyright
 *    notice, this list of conditions and the following disclaimer.
 * 2. Redistributions in binary form must reproduce the above copyright
 *    notice, this list of conditions and the following disclaimer in the
 *    documentation and/or other materials provided with the distribution.
 *
 * THIS SOFTWARE IS PROVIDED BY THE AUTHOR ``AS IS'' AND ANY EXPRESS OR
 * IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
 * WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
 * ARE DISCLAIMED. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY
 * DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
 * DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS
 * OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION)
 * HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT,
 * STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING
 * IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
 * POSSIBILITY OF SUCH DAMAGE.
 */

package bsdelta

// Instruction is one step of a diff: a diff-copy run followed by a literal
// run.
//
//   - CopyOut bytes starting at CopyOutOff in old are summed, byte-wise and
//     modulo 256, with CopyOut bytes starting at CopyInOff in new.
//   - CopyIn bytes starting at CopyInOff+CopyOut in new are copied verbatim.
//
// For consecutive instructions k, k+1: CopyInOff(k+1) == CopyInOff(k) +
// CopyOut(k) + CopyIn(k). The first instruction has CopyInOff == 0; the last
// ends exactly at len(new). Every CopyOutOff+CopyOut <= len(old) and every
// CopyInOff+CopyOut+CopyIn <= len(new).
type Instruction struct {
	CopyOut    Off
	CopyIn     Off
	CopyOutOff Off
	CopyInOff  Off
}
