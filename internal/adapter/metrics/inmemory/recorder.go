package inmemory

import (
	"sync"

	"shadowrise/internal/domain/hunter"
)

type Snapshot struct {
	QuestCompleted      uint64            `json:"quest_completed"`
	QuestFailed         uint64            `json:"quest_failed"`
	PenaltyEntered      uint64            `json:"penalty_entered"`
	PenaltyEscaped      uint64            `json:"penalty_escaped"`
	ExtractionTotal     uint64            `json:"extraction_total"`
	ExtractionSuccess   uint64            `json:"extraction_success"`
	ExtractionFailure   uint64            `json:"extraction_failure"`
	ExtractionsByRarity map[string]uint64 `json:"extractions_by_rarity"`
	RaidCleared         uint64            `json:"raid_cleared"`
	RaidFailed          uint64            `json:"raid_failed"`
}

type Recorder struct {
	mu                sync.Mutex
	questCompleted    uint64
	questFailed       uint64
	penaltyEntered    uint64
	penaltyEscaped    uint64
	extractionSuccess uint64
	extractionFailure uint64
	raidCleared       uint64
	raidFailed        uint64
	byRarity          map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byRarity: map[string]uint64{},
	}
}

func (r *Recorder) RecordQuestCompleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questCompleted++
}

func (r *Recorder) RecordQuestFailed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questFailed++
}

func (r *Recorder) RecordExtraction(rarity hunter.Rarity, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if success {
		r.extractionSuccess++
	} else {
		r.extractionFailure++
	}
	r.byRarity[string(rarity)]++
}

func (r *Recorder) RecordRaid(success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if success {
		r.raidCleared++
	} else {
		r.raidFailed++
	}
}

func (r *Recorder) RecordPenaltyEntered() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.penaltyEntered++
}

func (r *Recorder) RecordPenaltyEscaped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.penaltyEscaped++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		QuestCompleted:      r.questCompleted,
		QuestFailed:         r.questFailed,
		PenaltyEntered:      r.penaltyEntered,
		PenaltyEscaped:      r.penaltyEscaped,
		ExtractionSuccess:   r.extractionSuccess,
		ExtractionFailure:   r.extractionFailure,
		ExtractionTotal:     r.extractionSuccess + r.extractionFailure,
		ExtractionsByRarity: make(map[string]uint64, len(r.byRarity)),
		RaidCleared:         r.raidCleared,
		RaidFailed:          r.raidFailed,
	}
	for k, v := range r.byRarity {
		out.ExtractionsByRarity[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
