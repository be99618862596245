package level

import "fmt"

// Object classes the generator reads or writes.
const (
	WaveManagerClass  = "WaveManagerProps"
	WaveActionClass   = "SpawnZombiesJitteredWaveActionProps"
	StormClass        = "StormZombieSpawnerProps"
	RaidingPartyClass = "RaidingPartyZombieSpawnerProps"
	SpiderRainClass   = "SpiderRainZombieSpawnerProps"
)

// WaveAlias returns the alias of the wave object for a 1-based wave index.
func WaveAlias(wave int) string {
	return fmt.Sprintf("Wave%d", wave)
}

// RTID returns the reference key that resolves alias inside the current level.
func RTID(alias string) string {
	return fmt.Sprintf("RTID(%s@CurrentLevel)", alias)
}

// ZombieRef points at an entry of the game's zombie type table.
type ZombieRef struct {
	Type string `json:"Type"`
}

// ZombieRefs converts enemy names into zombie type references, keeping order.
func ZombieRefs(names []string) []ZombieRef {
	refs := make([]ZombieRef, len(names))
	for i, name := range names {
		refs[i] = ZombieRef{Type: fmt.Sprintf("RTID(%s@ZombieTypes)", name)}
	}
	return refs
}

// WaveActionData is the objdata of an ordinary wave.
type WaveActionData struct {
	AdditionalPlantfood int         `json:"AdditionalPlantfood"`
	Zombies             []ZombieRef `json:"Zombies"`
}

// StormData is the objdata of a sandstorm or snowstorm ambush.
// Waves is only present on sandstorms.
type StormData struct {
	ColumnEnd         int         `json:"ColumnEnd"`
	ColumnStart       int         `json:"ColumnStart"`
	GroupSize         int         `json:"GroupSize"`
	TimeBetweenGroups int         `json:"TimeBetweenGroups"`
	Type              string      `json:"Type"`
	Waves             *string     `json:"Waves,omitempty"`
	WaveStartMessage  string      `json:"WaveStartMessage"`
	Zombies           []ZombieRef `json:"Zombies"`
}

// RaidingPartyData is the objdata of a raiding party ambush.
type RaidingPartyData struct {
	GroupSize         int    `json:"GroupSize"`
	SwashbucklerCount int    `json:"SwashbucklerCount"`
	TimeBetweenGroups string `json:"TimeBetweenGroups"`
	WaveStartMessage  string `json:"WaveStartMessage"`
}

// SpiderRainData is the objdata of a bot swarm ambush.
type SpiderRainData struct {
	ColumnEnd           int     `json:"ColumnEnd"`
	ColumnStart         int     `json:"ColumnStart"`
	GroupSize           int     `json:"GroupSize"`
	SpiderCount         int     `json:"SpiderCount"`
	SpiderZombieName    string  `json:"SpiderZombieName"`
	TimeBeforeFullSpawn string  `json:"TimeBeforeFullSpawn"`
	TimeBetweenGroups   float64 `json:"TimeBetweenGroups"`
	WaveStartMessage    string  `json:"WaveStartMessage"`
	ZombieFallTime      float64 `json:"ZombieFallTime"`
}
