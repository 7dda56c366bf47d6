package catalog

import "fmt"

// defaultCatalog is the built-in reference catalog, set by init().
var defaultCatalog *Catalog

func init() {
	c, err := New(seedCourses(), seedRules())
	if err != nil {
		// Seed data ships with the binary; an invalid seed is a build
		// defect, not a runtime condition.
		panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
	}
	defaultCatalog = c
}

// Default returns the built-in new-curriculum catalog and equivalency
// table for the systems engineering transition plan.
func Default() *Catalog {
	return defaultCatalog
}

// seedCourses returns the new-curriculum study plan.
func seedCourses() []Course {
	return []Course{
		// Semester 1
		{Code: "INF101", Name: "Introducción a la Ingeniería de Sistemas", Credits: 2},
		{Code: "INF102", Name: "Fundamentos de Programación", Credits: 4},
		{Code: "MAT101", Name: "Cálculo Diferencial", Credits: 4},
		{Code: "MAT102", Name: "Álgebra Lineal", Credits: 3},
		{Code: "HUM101", Name: "Comprensión y Producción de Textos", Credits: 2},

		// Semester 2
		{Code: "INF201", Name: "Programación Orientada a Objetos", Credits: 4, Prerequisites: []string{"INF102"}},
		{Code: "INF202", Name: "Matemáticas Discretas", Credits: 3, Prerequisites: []string{"MAT102"}},
		{Code: "MAT201", Name: "Cálculo Integral", Credits: 4, Prerequisites: []string{"MAT101"}},
		{Code: "FIS101", Name: "Física Mecánica", Credits: 4, Prerequisites: []string{"MAT101"}},

		// Semester 3
		{Code: "INF301", Name: "Estructuras de Datos", Credits: 4, Prerequisites: []string{"INF201", "INF202"}},
		{Code: "INF302", Name: "Bases de Datos", Credits: 3, Prerequisites: []string{"INF201"}},
		{Code: "EST201", Name: "Probabilidad y Estadística", Credits: 3, Prerequisites: []string{"MAT201"}},

		// Semester 4
		{Code: "INF401", Name: "Análisis y Diseño de Algoritmos", Credits: 3, Prerequisites: []string{"INF301"}},
		{Code: "INF402", Name: "Arquitectura de Computadores", Credits: 3, Prerequisites: []string{"INF201"}},
		{Code: "INF403", Name: "Ingeniería de Software I", Credits: 3, Prerequisites: []string{"INF301", "INF302"}},

		// Semester 5
		{Code: "INF501", Name: "Sistemas Operativos", Credits: 3, Prerequisites: []string{"INF401", "INF402"}},
		{Code: "INF502", Name: "Redes de Computadores", Credits: 3, Prerequisites: []string{"INF402"}},
		{Code: "INF503", Name: "Ingeniería de Software II", Credits: 3, Prerequisites: []string{"INF403", "EST201"}},
	}
}

// seedRules returns the equivalency table from the old curriculum (3.0)
// to the new plan. Old codes follow the registrar's numeric scheme; names
// are matched normalized when a transcript carries no usable code.
func seedRules() []EquivalencyRule {
	return []EquivalencyRule{
		{OldCode: "3007844", OldName: "Introducción a la Ingeniería", NewCode: "INF101"},
		{OldName: "Taller de Ingeniería", NewCode: "INF101"},
		{OldCode: "3007845", OldName: "Programación de Computadores", NewCode: "INF102"},
		{OldCode: "3006914", OldName: "Algoritmos I", NewCode: "INF102"},
		{OldCode: "3006906", OldName: "Cálculo Diferencial", NewCode: "MAT101"},
		{OldCode: "3006907", OldName: "Cálculo Integral", NewCode: "MAT201"},
		{OldCode: "3006908", OldName: "Álgebra Lineal", NewCode: "MAT102"},
		{OldCode: "3010651", OldName: "Lectoescritura", NewCode: "HUM101"},
		{OldCode: "3010652", NewCode: "HUM101"},
		{OldCode: "3007847", OldName: "Programación Orientada a Objetos", NewCode: "INF201"},
		{OldCode: "3007848", OldName: "Matemáticas Discretas", NewCode: "INF202"},
		{OldCode: "3006909", OldName: "Física Mecánica", NewCode: "FIS101"},
		{OldCode: "3007849", OldName: "Estructuras de Datos", NewCode: "INF301"},
		{OldCode: "3007850", OldName: "Bases de Datos I", NewCode: "INF302"},
		{OldCode: "3006915", OldName: "Estadística I", NewCode: "EST201"},
		{OldCode: "3007851", OldName: "Análisis de Algoritmos", NewCode: "INF401"},
		{OldCode: "3007852", OldName: "Arquitectura de Computadores", NewCode: "INF402"},
		{OldCode: "3007853", OldName: "Ingeniería de Software", NewCode: "INF403"},
		{OldCode: "3007854", OldName: "Sistemas Operativos", NewCode: "INF501"},
		{OldCode: "3007855", OldName: "Redes de Computadores", NewCode: "INF502"},

		// The old "Informática I" folded intro and programming into one
		// course; completing it satisfies both new courses.
		{OldCode: "3009137", OldName: "Informática I", NewCode: "INF101"},
		{OldCode: "3009137", OldName: "Informática I", NewCode: "INF102"},
	}
}
