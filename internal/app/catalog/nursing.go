package catalog

import "github.com/jdrincon/acadplan/internal/app/models"

// Nursing returns the Enfermería program catalog: 189 credits over ten
// semesters. Unlike Fisioterapia it carries three corequisite pairs in the
// clinical track.
func Nursing() ProgramCatalog {
	return ProgramCatalog{
		Program: models.Program{
			Slug:                SlugNursing,
			Name:                "Enfermería",
			TotalCredits:        189,
			StandardLoad:        map[int]int{1: 18, 2: 20, 3: 21, 4: 22, 5: 21, 6: 19, 7: 20, 8: 16, 9: 17, 10: 15},
			PlacementThresholds: []int{12, 32, 53, 75, 96, 115, 135, 151, 168},
		},
		Courses: []models.Course{
			// Semester 1
			{Code: "CIB", Name: "Competencias Idiomáticas Básicas", Credits: 2, Semester: 1, Category: models.CategoryRegular},
			{Code: "ING1", Name: "Inglés 1", Credits: 2, Semester: 1, Category: models.CategoryEnglish},
			{Code: "MORF1", Name: "Morfofisiología I", Credits: 6, Semester: 1, Category: models.CategoryRegular},
			{Code: "CBAS", Name: "Ciencias Básicas", Credits: 6, Semester: 1, Category: models.CategoryRegular},
			{Code: "NCUI", Name: "Naturaleza del Cuidado", Credits: 2, Semester: 1, Category: models.CategoryRegular},

			// Semester 2
			{Code: "CORE1", Name: "Core Curriculum Persona y Cultura I", Credits: 2, Semester: 2, Category: models.CategoryCoreCurriculum},
			{Code: "ING2", Name: "Inglés 2", Credits: 3, Semester: 2, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1"}},
			{Code: "MORF2", Name: "Morfofisiología II", Credits: 6, Semester: 2, Category: models.CategoryRegular,
				Prerequisites: []string{"MORF1", "CBAS"}},
			{Code: "FCUI", Name: "Fundamentación del Cuidado", Credits: 4, Semester: 2, Category: models.CategoryRegular,
				Prerequisites: []string{"NCUI", "CBAS", "MORF1"}},
			{Code: "DTEN", Name: "Desarrollo Teórico de Enfermería", Credits: 3, Semester: 2, Category: models.CategoryRegular},
			{Code: "MICRO", Name: "Microbiología", Credits: 2, Semester: 2, Category: models.CategoryRegular,
				Prerequisites: []string{"CBAS"}},

			// Semester 3
			{Code: "CORE2", Name: "Core Curriculum Persona y Cultura II", Credits: 2, Semester: 3, Category: models.CategoryCoreCurriculum,
				Prerequisites: []string{"CORE1"}},
			{Code: "ING3", Name: "Inglés 3", Credits: 3, Semester: 3, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1", "ING2"}},
			{Code: "FPAT", Name: "Fisiopatología", Credits: 3, Semester: 3, Category: models.CategoryRegular,
				Prerequisites: []string{"MORF2"},
				Corequisites:  []string{"SEMIO", "CADU1"}},
			{Code: "PSAP", Name: "Psicología del Aprendizaje", Credits: 2, Semester: 3, Category: models.CategoryRegular},
			{Code: "SEMIO", Name: "Semiología", Credits: 3, Semester: 3, Category: models.CategoryRegular,
				Prerequisites: []string{"FCUI", "MORF2"},
				Corequisites:  []string{"FPAT"}},
			{Code: "EMBG", Name: "Embriología y Genética", Credits: 2, Semester: 3, Category: models.CategoryRegular},
			{Code: "CADU1", Name: "Cuidado del Adulto I", Credits: 6, Semester: 3, Category: models.CategoryRegular,
				Prerequisites: []string{"FCUI", "MORF2"},
				Corequisites:  []string{"FPAT"}},

			// Semester 4
			{Code: "CORE3", Name: "Core Curriculum Persona y Cultura III", Credits: 2, Semester: 4, Category: models.CategoryCoreCurriculum,
				Prerequisites: []string{"CORE1", "CORE2"}},
			{Code: "ING4", Name: "Inglés 4", Credits: 3, Semester: 4, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1", "ING2", "ING3"}},
			{Code: "PRECAL", Name: "Precálculo", Credits: 2, Semester: 4, Category: models.CategoryIntersemester},
			{Code: "CBD", Name: "Competencias Básicas Digitales", Credits: 3, Semester: 4, Category: models.CategoryRegular},
			{Code: "PSDE", Name: "Psicología del Desarrollo", Credits: 3, Semester: 4, Category: models.CategoryRegular,
				Prerequisites: []string{"PSAP"}},
			{Code: "FARM1", Name: "Farmacología I", Credits: 2, Semester: 4, Category: models.CategoryRegular,
				Prerequisites: []string{"MICRO"}},
			{Code: "CADU2", Name: "Cuidado del Adulto II", Credits: 7, Semester: 4, Category: models.CategoryRegular,
				Prerequisites: []string{"FPAT", "CADU1", "FARM1"}},

			// Semester 5
			{Code: "CORE4", Name: "Core Curriculum Persona y Cultura IV", Credits: 2, Semester: 5, Category: models.CategoryCoreCurriculum,
				Prerequisites: []string{"CORE1", "CORE2", "CORE3"}},
			{Code: "ING5", Name: "Inglés 5", Credits: 3, Semester: 5, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1", "ING2", "ING3", "ING4"}},
			{Code: "BIOEST", Name: "Bioestadística y Epidemiología", Credits: 2, Semester: 5, Category: models.CategoryRegular,
				Prerequisites: []string{"PRECAL"}},
			{Code: "TSCA", Name: "Teoría del Servicio y de la Calidad", Credits: 3, Semester: 5, Category: models.CategoryRegular},
			{Code: "FARM2", Name: "Farmacología II", Credits: 2, Semester: 5, Category: models.CategoryRegular,
				Prerequisites: []string{"FARM1"},
				Corequisites:  []string{"CADU3"}},
			{Code: "CADU3", Name: "Cuidado del Adulto III", Credits: 7, Semester: 5, Category: models.CategoryRegular,
				Prerequisites: []string{"CADU2", "FARM1", "ING3"},
				Corequisites:  []string{"FARM2"}},
			{Code: "ELE1", Name: "Electiva I", Credits: 2, Semester: 5, Category: models.CategoryRegular},

			// Semester 6
			{Code: "CORE5", Name: "Core Curriculum Persona y Cultura V", Credits: 3, Semester: 6, Category: models.CategoryCoreCurriculum,
				Prerequisites: []string{"CORE1", "CORE2", "CORE3", "CORE4"}},
			{Code: "ING6", Name: "Inglés 6", Credits: 3, Semester: 6, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1", "ING2", "ING3", "ING4", "ING5"}},
			{Code: "INV1", Name: "Investigación I", Credits: 2, Semester: 6, Category: models.CategoryRegular,
				Prerequisites: []string{"BIOEST"}},
			{Code: "FARM3", Name: "Farmacología III", Credits: 2, Semester: 6, Category: models.CategoryRegular,
				Prerequisites: []string{"FARM2"},
				Corequisites:  []string{"CMNE"}},
			{Code: "CMNE", Name: "Cuidado de la Mujer y Neonato", Credits: 9, Semester: 6, Category: models.CategoryRegular,
				Prerequisites: []string{"CADU3", "EMBG"},
				Corequisites:  []string{"FARM3"}},

			// Semester 7
			{Code: "ING7", Name: "Inglés 7", Credits: 3, Semester: 7, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1", "ING2", "ING3", "ING4", "ING5", "ING6"}},
			{Code: "INV2", Name: "Investigación II", Credits: 2, Semester: 7, Category: models.CategoryRegular,
				Prerequisites: []string{"INV1"}},
			{Code: "GHUM", Name: "Gestión Humana", Credits: 3, Semester: 7, Category: models.CategoryRegular},
			{Code: "CNIA", Name: "Cuidado al Niño y al Adolescente", Credits: 9, Semester: 7, Category: models.CategoryRegular,
				Prerequisites: []string{"CADU3", "FARM3", "ING5"}},
			{Code: "DEON", Name: "Deontología de Enfermería", Credits: 1, Semester: 7, Category: models.CategoryRegular},
			{Code: "ELE2", Name: "Electiva II", Credits: 2, Semester: 7, Category: models.CategoryRegular},

			// Semester 8
			{Code: "RSEM3", Name: "Research Seminar III", Credits: 2, Semester: 8, Category: models.CategoryRegular,
				Prerequisites: []string{"INV2"}},
			{Code: "ESPR", Name: "Educación en Salud y Programas", Credits: 2, Semester: 8, Category: models.CategoryRegular},
			{Code: "GCSE", Name: "Gestión de Calidad en el Servicio", Credits: 3, Semester: 8, Category: models.CategoryRegular},
			{Code: "CONT", Name: "Contabilidad Financiera", Credits: 3, Semester: 8, Category: models.CategoryRegular},
			{Code: "SMPS", Name: "Salud Mental y Psiquiatría", Credits: 6, Semester: 8, Category: models.CategoryRegular,
				Prerequisites: []string{"CADU3", "FARM3", "CNIA"}},

			// Semester 9
			{Code: "OPG1", Name: "Opción de Grado I", Credits: 2, Semester: 9, Category: models.CategoryRegular,
				Prerequisites: []string{"RSEM3"}},
			{Code: "GCUI1", Name: "Gestión del Cuidado I", Credits: 13, Semester: 9, Category: models.CategoryRegular,
				Prerequisites: []string{"ING7", "CMNE", "CNIA", "SMPS"}},
			{Code: "ELE3", Name: "Electiva III", Credits: 2, Semester: 9, Category: models.CategoryRegular},

			// Semester 10
			{Code: "OPG2", Name: "Opción de Grado II", Credits: 2, Semester: 10, Category: models.CategoryRegular,
				Prerequisites: []string{"OPG1"}},
			{Code: "GCUI2", Name: "Gestión del Cuidado II", Credits: 13, Semester: 10, Category: models.CategoryRegular,
				Prerequisites: []string{"GCUI1"}},
		},
	}
}
