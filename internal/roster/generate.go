package roster

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// DefaultFixtureSize is the number of characters written by the generator
// when no count is given.
const DefaultFixtureSize = 1500

const (
	minGeneratedPower = 100
	maxGeneratedPower = 10000
)

var namePool = []string{
	"Naruto", "Sasuke", "Sakura", "Kakashi", "Hinata", "Shikamaru", "Ino", "Choji",
	"Rock Lee", "Neji", "Tenten", "Gaara", "Temari", "Kankuro", "Jiraiya", "Tsunade",
	"Orochimaru", "Itachi", "Kisame", "Deidara", "Sasori", "Hidan", "Kakuzu", "Obito",
	"Madara", "Hashirama", "Tobirama", "Minato", "Kushina", "Hiruzen", "Danzo", "Might Guy",
	"Asuma", "Kurenai", "Konohamaru", "Iruka", "Shino", "Kiba", "Akamaru", "Yamato",
	"Sai", "Killer Bee", "A", "Darui", "Kurotsuchi", "Akatsuchi", "Onoki", "Mei",
	"Chojuro", "Ao", "Zabuza", "Haku", "Kimimaro", "Jugo", "Suigetsu", "Karin",
	"Kabuto", "Anko", "Ibiki", "Shisui", "Fugaku", "Mikoto", "Izuna", "Indra",
	"Asura", "Hagoromo", "Hamura", "Kaguya", "Black Zetsu", "White Zetsu", "Pain", "Konan",
	"Nagato", "Yahiko", "Hanzo", "Chiyo", "Ebizo", "Rasa", "Karura", "Pakura",
	"Guren", "Yugito", "Yagura", "Roshi", "Han", "Utakata", "Fu", "Matatabi",
	"Isobu", "Son Goku", "Kokuo", "Saiken", "Chomei", "Gyuki", "Kurama", "Shukaku",
}

// PinnedCharacters are always the first records of a generated fixture so
// that tests and demos have stable anchors.
func PinnedCharacters() []Character {
	return []Character{
		{ID: "test-naruto", Name: "Naruto", Location: "Konoha", Health: Healthy, Power: 10000},
		{ID: "test-sasuke", Name: "Sasuke", Location: "Konoha", Health: Injured, Power: 9500},
		{ID: "test-gaara", Name: "Gaara", Location: "Suna", Health: Critical, Power: 8500},
		{ID: "test-rocklee", Name: "Rock Lee", Location: "Konoha", Health: Healthy, Power: 50},
		{ID: "test-killerbee", Name: "Killer Bee", Location: "Kumo", Health: Healthy, Power: 9000},
	}
}

// Generate synthesizes count characters. The pinned characters come first;
// the rest cycle through the remaining names, gaining a numeric suffix once
// the pool is exhausted. The same seed always yields the same fixture.
func Generate(count int, seed uint64) ([]Character, error) {
	pinned := PinnedCharacters()
	if count < len(pinned) {
		return nil, fmt.Errorf("count %d is smaller than the %d pinned characters", count, len(pinned))
	}

	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	src := rand.NewChaCha8(key)
	rng := rand.New(src)

	taken := make(map[string]struct{}, len(pinned))
	for _, c := range pinned {
		taken[c.Name] = struct{}{}
	}
	available := make([]string, 0, len(namePool))
	for _, name := range namePool {
		if _, ok := taken[name]; !ok {
			available = append(available, name)
		}
	}

	out := make([]Character, 0, count)
	out = append(out, pinned...)
	for i := 0; len(out) < count; i++ {
		name := available[i%len(available)]
		if i >= len(available) {
			name = fmt.Sprintf("%s %d", name, i/len(available))
		}
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return nil, fmt.Errorf("generate id: %w", err)
		}
		out = append(out, Character{
			ID:       id.String(),
			Name:     name,
			Location: Locations[rng.IntN(len(Locations))],
			Health:   Healths[rng.IntN(len(Healths))],
			Power:    minGeneratedPower + rng.IntN(maxGeneratedPower-minGeneratedPower+1),
		})
	}
	return out, nil
}
