package generator

import (
	"fmt"

	"github.com/vovakirdan/levelgen/internal/config"
	"github.com/vovakirdan/levelgen/internal/level"
)

// AmbushKind identifies one of the special events a wave can carry.
type AmbushKind uint8

const (
	AmbushSandstorm AmbushKind = iota
	AmbushRaidingParty
	AmbushBotSwarm
	AmbushSnowstorm
)

// ambushKinds is the draw order used when picking a kind.
var ambushKinds = []AmbushKind{AmbushSandstorm, AmbushRaidingParty, AmbushBotSwarm, AmbushSnowstorm}

// String returns the display name of the kind.
func (k AmbushKind) String() string {
	switch k {
	case AmbushSandstorm:
		return "Sandstorm"
	case AmbushRaidingParty:
		return "Raiding Party"
	case AmbushBotSwarm:
		return "Bot Swarm"
	case AmbushSnowstorm:
		return "Snowstorm"
	default:
		return "Unknown"
	}
}

// eventName is the alias suffix the game uses for the kind's spawner.
func (k AmbushKind) eventName() string {
	switch k {
	case AmbushSandstorm, AmbushSnowstorm:
		return "StormEvent0"
	case AmbushRaidingParty:
		return "RaidingPartyEvent0"
	case AmbushBotSwarm:
		return "SpiderRainEvent0"
	default:
		panic(fmt.Sprintf("generator: unhandled ambush kind %d", k))
	}
}

// Ambush tuning constants.
const (
	stormColumnEnd      = 7
	stormMinGroup       = 2
	stormMaxGroup       = 4
	stormGroupDelay     = 1
	raidMinGroup        = 1
	raidMaxGroup        = 5
	raidGroupDelay      = "1"
	swarmColumnEnd      = 8
	swarmUnit           = "future_imp"
	swarmFullSpawnDelay = "1"
	swarmGroupDelay     = 0.2
	swarmFallTime       = 1.5
	ambushColumnBase    = 6
	ambushDieBase       = 8
)

// Ambush is an event attached to a single wave. It is implemented only by
// StormAmbush, RaidingPartyAmbush and BotSwarmAmbush.
type Ambush interface {
	Kind() AmbushKind
	Wave() int
	Object() level.Object
	sealed()
}

// StormAmbush drops roster enemies onto the lawn inside a sand or snow storm.
type StormAmbush struct {
	WaveIndex int
	Snow      bool
	Data      level.StormData
}

func (a *StormAmbush) Kind() AmbushKind {
	if a.Snow {
		return AmbushSnowstorm
	}
	return AmbushSandstorm
}

func (a *StormAmbush) Wave() int { return a.WaveIndex }

func (a *StormAmbush) Object() level.Object {
	return level.Object{
		Aliases:  []string{ambushAlias(a)},
		ObjClass: level.StormClass,
		ObjData:  a.Data,
	}
}

func (*StormAmbush) sealed() {}

// RaidingPartyAmbush spawns a group of swashbucklers.
type RaidingPartyAmbush struct {
	WaveIndex int
	Data      level.RaidingPartyData
}

func (a *RaidingPartyAmbush) Kind() AmbushKind { return AmbushRaidingParty }

func (a *RaidingPartyAmbush) Wave() int { return a.WaveIndex }

func (a *RaidingPartyAmbush) Object() level.Object {
	return level.Object{
		Aliases:  []string{ambushAlias(a)},
		ObjClass: level.RaidingPartyClass,
		ObjData:  a.Data,
	}
}

func (*RaidingPartyAmbush) sealed() {}

// BotSwarmAmbush rains imps from the sky.
type BotSwarmAmbush struct {
	WaveIndex int
	Data      level.SpiderRainData
}

func (a *BotSwarmAmbush) Kind() AmbushKind { return AmbushBotSwarm }

func (a *BotSwarmAmbush) Wave() int { return a.WaveIndex }

func (a *BotSwarmAmbush) Object() level.Object {
	return level.Object{
		Aliases:  []string{ambushAlias(a)},
		ObjClass: level.SpiderRainClass,
		ObjData:  a.Data,
	}
}

func (*BotSwarmAmbush) sealed() {}

// ambushAlias returns the object alias of an ambush, e.g. "Wave4StormEvent0".
func ambushAlias(a Ambush) string {
	return level.WaveAlias(a.Wave()) + a.Kind().eventName()
}

// AmbushKey returns the reference key linking a wave to its ambush.
func AmbushKey(a Ambush) string {
	return level.RTID(ambushAlias(a))
}

// shouldAmbush decides whether a wave gets an ambush. The die is always
// rolled; flag waves get one regardless of the result.
func shouldAmbush(d config.Difficulty, plan StructurePlan, wave int, src Source) bool {
	roll := between(src, 1, ambushDieBase-d.Intensity())
	return roll == 1 || plan.IsFlagWave(wave)
}

// pickAmbushKind draws a kind uniformly.
func pickAmbushKind(src Source) AmbushKind {
	return ambushKinds[src.Intn(len(ambushKinds))]
}

// buildAmbush builds the payload of the given kind for a wave. budget is the
// wave's ordinary budget, never the doubled flag-wave budget.
func buildAmbush(kind AmbushKind, wave, budget int, d config.Difficulty, roster Roster, fallback string, src Source) Ambush {
	columnStart := ambushColumnBase - d.Intensity()

	switch kind {
	case AmbushSandstorm, AmbushSnowstorm:
		data := level.StormData{
			ColumnEnd:         stormColumnEnd,
			ColumnStart:       columnStart,
			GroupSize:         between(src, stormMinGroup, stormMaxGroup),
			TimeBetweenGroups: stormGroupDelay,
		}
		if kind == AmbushSandstorm {
			noWaves := ""
			data.Type = "sandstorm"
			data.Waves = &noWaves
			data.WaveStartMessage = "[WARNING_SANDSTORM]"
		} else {
			data.Type = "snowstorm"
			data.WaveStartMessage = "Snowstorm!"
		}
		names, _ := Fill(budget, roster, fallback, src)
		data.Zombies = level.ZombieRefs(names)
		return &StormAmbush{WaveIndex: wave, Snow: kind == AmbushSnowstorm, Data: data}

	case AmbushRaidingParty:
		return &RaidingPartyAmbush{
			WaveIndex: wave,
			Data: level.RaidingPartyData{
				GroupSize:         between(src, raidMinGroup, raidMaxGroup),
				SwashbucklerCount: budget / 2,
				TimeBetweenGroups: raidGroupDelay,
				WaveStartMessage:  "Raiding Party!",
			},
		}

	case AmbushBotSwarm:
		return &BotSwarmAmbush{
			WaveIndex: wave,
			Data: level.SpiderRainData{
				ColumnEnd:           swarmColumnEnd,
				ColumnStart:         columnStart,
				GroupSize:           between(src, 1, max(1, budget/5)),
				SpiderCount:         budget,
				SpiderZombieName:    swarmUnit,
				TimeBeforeFullSpawn: swarmFullSpawnDelay,
				TimeBetweenGroups:   swarmGroupDelay,
				WaveStartMessage:    "[WARNING_SPIDERRAIN]",
				ZombieFallTime:      swarmFallTime,
			},
		}
	}

	panic(fmt.Sprintf("generator: unhandled ambush kind %d", kind))
}
