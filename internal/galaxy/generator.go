package galaxy

import "planets-explorer/internal/system"

// Generate builds count systems for seed, one independent stream per index.
// There is no state shared between systems, so any subset of indices can be
// generated on its own and in any order.
func Generate(seed int64, count int, tuning system.Tuning, opts system.Options) GalaxyRecord {
	systems := make([]system.StarSystemRecord, count)
	for i := range systems {
		systems[i] = system.Generate(seed, i, tuning, opts)
	}
	return GalaxyRecord{Seed: seed, Systems: systems}
}
