package verifyflow

import (
	"dvmverify/opcode"
)

// propagate computes addr's successors and merges state into each one's
// saved line, pushing any address whose saved line changed (or was first
// created) back onto the work list. Exception-handler edges use pre, the
// register state captured before addr's instruction executed, since a
// throwing instruction's own side effects (e.g. a partially-applied
// move-result, or registers clobbered by invoke) must not leak into the
// handler, using an entry snapshot for exception-handler edges. Every
// other edge uses post, the state after addr's transfer function
// ran.
func (v *verifier) propagate(addr int, di opcode.DecodedInstruction, post, pre *RegisterLine) error {
	info := opcode.Lookup(di.Op)
	width := v.flags.Width(addr)

	if v.flags.InTry(addr) && info.Flags&opcode.CanThrow != 0 {
		for _, t := range v.m.Tries {
			if addr < t.StartAddr || addr >= t.EndAddr {
				continue
			}
			for _, h := range t.Handlers {
				v.mergeOrQueue(h.Addr, pre)
			}
		}
	}

	if info.Flags&opcode.CanSwitch != 0 {
		targets, err := v.switchTargets(addr, di)
		if err != nil {
			return err
		}
		for _, target := range targets {
			v.mergeOrQueue(target, post)
		}
	}

	if info.Flags&opcode.CanBranch != 0 {
		offset, ok := branchOffsetOf(di)
		if !ok {
			return fail(addr, ErrGeneric, "branch instruction has no decodable target")
		}
		v.mergeOrQueue(addr+int(offset), post)
	}

	if info.Flags&opcode.CanContinue != 0 {
		v.mergeOrQueue(addr+width, post)
	}

	return nil
}

func (v *verifier) switchTargets(addr int, di opcode.DecodedInstruction) ([]int, error) {
	tableAddr := addr + int(int32(di.VB))
	kind := opcode.PeekDataPayload(v.m.Code, tableAddr)
	var targets []int
	switch kind {
	case opcode.PackedSwitchPayload:
		_, rel := opcode.PackedSwitchEntries(v.m.Code, tableAddr)
		for _, r := range rel {
			targets = append(targets, addr+int(r))
		}
	case opcode.SparseSwitchPayload:
		entries := opcode.SparseSwitchEntries(v.m.Code, tableAddr)
		for _, e := range entries {
			targets = append(targets, addr+int(e.Target))
		}
	default:
		return nil, fail(addr, ErrGeneric, "switch instruction does not reference a switch payload")
	}
	return targets, nil
}

// mergeOrQueue installs candidate into target's saved line via lattice
// merge, queuing target for (re)processing if its saved state changed or
// did not exist yet. Every reachable address gets a saved line this way,
// not only join points; register-map generation later reads only the
// lines at GC-point addresses.
func (v *verifier) mergeOrQueue(target int, candidate *RegisterLine) {
	existing, ok := v.saved[target]
	if !ok {
		v.saved[target] = candidate.Clone()
		v.work = append(v.work, target)
		return
	}
	if MergeInto(existing, candidate, v.res) {
		v.work = append(v.work, target)
	}
}
