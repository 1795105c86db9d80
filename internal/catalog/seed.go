// internal/catalog/seed.go
package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultLandmarks is the reference set a new store is seeded with.
var DefaultLandmarks = []Landmark{
	{1, "Proxima Centauri", 4.24, "Star", "The closest known star to the Sun."},
	{2, "Alpha Centauri A/B", 4.37, "Star System", "Our nearest bright neighbor system."},
	{3, "Barnard's Star", 5.96, "Red Dwarf", "A very low-mass red dwarf star."},
	{4, "Wolf 359", 7.78, "Red Dwarf", "One of the faintest stars near the Sun."},
	{5, "Lalande 21185", 8.29, "Red Dwarf", "The brightest red dwarf in the northern hemisphere."},
	{6, "Sirius", 8.6, "Star", "The brightest star in Earth's night sky."},
	{7, "Epsilon Eridani", 10.5, "Star", "A star resembling a young version of our Sun."},
	{8, "Procyon", 11.46, "Star", "The eighth brightest star in the night sky."},
	{9, "Altair", 16.7, "Star", "One of the vertices of the Summer Triangle."},
	{10, "Fomalhaut", 25.0, "Star", "Known as the 'Lonely One', surrounded by a debris disk."},
	{11, "Vega", 25.0, "Star", "The standard zero point for the magnitude scale."},
	{12, "Arcturus", 36.7, "Star", "A red giant and the brightest star in the northern celestial hemisphere."},
	{13, "TRAPPIST-1", 39.0, "Star System", "Home to seven Earth-sized planets."},
	{14, "Capella", 42.9, "Star System", "The brightest star in the constellation Auriga."},
	{15, "Aldebaran", 65.3, "Star", "The fiery eye of Taurus the Bull."},
	{16, "Regulus", 79.3, "Star", "A quadruple star system in Leo."},
	{17, "Algol", 90.0, "Star System", "The 'Demon Star', a famous eclipsing binary."},
	{18, "Dubhe", 123.0, "Star", "One of the pointer stars in the Big Dipper."},
	{19, "Hyades Cluster", 153.0, "Star Cluster", "The nearest open star cluster to the Solar System."},
	{20, "Spica", 250.0, "Star", "A blue giant binary star in Virgo."},
	{21, "Canopus", 310.0, "Star", "The second brightest star in the night sky."},
	{22, "Polaris", 323.0, "Star", "The current North Star."},
	{23, "Pleiades (Seven Sisters)", 444.0, "Star Cluster", "A famous open star cluster visible to the naked eye."},
	{24, "Betelgeuse", 642.5, "Red Supergiant", "A massive star expected to explode as a supernova soon."},
	{25, "Antares", 550.0, "Red Supergiant", "The 'Heart of the Scorpion'."},
	{26, "Helix Nebula", 655.0, "Nebula", "One of the closest planetary nebulae to Earth."},
	{27, "Rigel", 860.0, "Blue Supergiant", "The brightest star in Orion."},
	{28, "Orion Nebula", 1344.0, "Nebula", "A stellar nursery visible to the naked eye."},
	{29, "Deneb", 2615.0, "Blue Supergiant", "One of the most luminous stars known."},
	{30, "Crab Nebula", 6500.0, "Supernova Remnant", "Remnant of the supernova observed in 1054 AD."},
	{31, "Eagle Nebula (Pillars of Creation)", 7000.0, "Nebula", "Famous for the 'Pillars of Creation' image."},
	{32, "Eta Carinae", 7500.0, "Star System", "A volatile system that famously erupted in the 1840s."},
	{33, "Galactic Center (Sagittarius A*)", 26673.0, "Supermassive Black Hole", "The center of our Milky Way galaxy."},
	{34, "Large Magellanic Cloud", 158200.0, "Galaxy", "A satellite galaxy of the Milky Way."},
	{35, "Small Magellanic Cloud", 199000.0, "Galaxy", "A dwarf galaxy near the Milky Way."},
	{36, "Andromeda Galaxy", 2537000.0, "Galaxy", "Our nearest major galactic neighbor, destined to collide with us."},
	{37, "Triangulum Galaxy", 2723000.0, "Galaxy", "The third-largest member of the Local Group."},
	{38, "Whirlpool Galaxy", 23000000.0, "Galaxy", "A classic spiral galaxy interacting with a smaller companion."},
	{39, "Sombrero Galaxy", 31100000.0, "Galaxy", "Famous for its bright nucleus and large central bulge."},
	{40, "Virgo Cluster", 53800000.0, "Galaxy Cluster", "A massive cluster of galaxies at the center of the Local Supercluster."},
}

// Seed creates the schema and inserts DefaultLandmarks when the store is empty.
// It reports whether rows were written.
func Seed(ctx context.Context, st Store, logger *slog.Logger) (bool, error) {
	if err := st.EnsureSchema(ctx); err != nil {
		return false, fmt.Errorf("ensure schema: %w", err)
	}

	count, err := st.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count landmarks: %w", err)
	}
	if count > 0 {
		logger.Debug("catalog already seeded", "landmarks", count)
		return false, nil
	}

	if err := st.Insert(ctx, DefaultLandmarks); err != nil {
		return false, fmt.Errorf("seed landmarks: %w", err)
	}

	logger.Info("catalog seeded", "landmarks", len(DefaultLandmarks))
	return true, nil
}
