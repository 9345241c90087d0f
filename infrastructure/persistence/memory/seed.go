package memory

import (
	"fmt"

	"github.com/google/uuid"

	"lexicon-backend/domain/core/entities"
)

// Seed populates the store with the demonstration lexicon: four
// interlinked core concepts plus generatedCount filler concepts for
// pagination. Association edges are directed and deliberately asymmetric
// (Memory lists Sadness, Sadness lists Memory, but Joy lists Memory
// without the reverse edge).
func Seed(store *ConceptStore, generatedCount int) error {
	joyID := uuid.NewString()
	sadnessID := uuid.NewString()
	logicID := uuid.NewString()
	memoryID := uuid.NewString()

	joy, err := entities.NewConcept(joyID, "Joy", "A strong feeling of happiness, well-being, and elation.")
	if err != nil {
		return err
	}
	joy.SentienceVectors = entities.SentienceVectors{
		EmotionalValence:  0.9,
		CognitiveLoad:     0.2,
		TemporalRelevance: 1.0,
	}
	joy.Associate(memoryID)
	joy.Associate(logicID)
	joy.AddOrigin(entities.OriginUserDefined)
	joy.AddOrigin(entities.OriginSelfGenerated)

	sadness, err := entities.NewConcept(sadnessID, "Sadness", "An emotional state of unhappiness, sorrow, and grief.")
	if err != nil {
		return err
	}
	sadness.SentienceVectors = entities.SentienceVectors{
		EmotionalValence:  -0.8,
		CognitiveLoad:     0.4,
		TemporalRelevance: 0.8,
	}
	sadness.Associate(memoryID)
	sadness.AddOrigin(entities.OriginUserDefined)

	logic, err := entities.NewConcept(logicID, "Logic", "The systematic use of a set of rules for valid inference.")
	if err != nil {
		return err
	}
	logic.SentienceVectors = entities.SentienceVectors{
		EmotionalValence:  0.1,
		CognitiveLoad:     0.9,
		TemporalRelevance: 0.7,
	}
	logic.Associate(joyID)
	logic.Associate(memoryID)
	logic.AddOrigin(entities.OriginSelfGenerated)

	mem, err := entities.NewConcept(memoryID, "Memory", "The faculty by which the mind stores and remembers information.")
	if err != nil {
		return err
	}
	mem.SentienceVectors = entities.SentienceVectors{
		EmotionalValence:  0.0,
		CognitiveLoad:     0.8,
		TemporalRelevance: 0.95,
	}
	mem.Associate(joyID)
	mem.Associate(sadnessID)
	mem.Associate(logicID)
	mem.AddOrigin(entities.OriginSelfGenerated)

	for _, concept := range []*entities.Concept{joy, sadness, logic, mem} {
		if err := store.Put(concept); err != nil {
			return err
		}
	}

	for i := 0; i < generatedCount; i++ {
		concept, err := entities.NewConcept(
			uuid.NewString(),
			fmt.Sprintf("Concept %d", i+1),
			"A generated concept to demonstrate the lexicon's capacity.",
		)
		if err != nil {
			return err
		}
		concept.SentienceVectors = entities.SentienceVectors{
			EmotionalValence:  0,
			CognitiveLoad:     0.5,
			TemporalRelevance: 0.1,
		}
		concept.AddOrigin(entities.OriginSelfGenerated)

		if err := store.Put(concept); err != nil {
			return err
		}
	}

	return nil
}
