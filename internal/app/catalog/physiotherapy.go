package catalog

import "github.com/jdrincon/acadplan/internal/app/models"

// Physiotherapy returns the Fisioterapia program catalog: 180 credits over
// ten semesters.
func Physiotherapy() ProgramCatalog {
	return ProgramCatalog{
		Program: models.Program{
			Slug:                SlugPhysiotherapy,
			Name:                "Fisioterapia",
			TotalCredits:        180,
			StandardLoad:        map[int]int{1: 19, 2: 18, 3: 19, 4: 18, 5: 18, 6: 19, 7: 22, 8: 17, 9: 15, 10: 15},
			PlacementThresholds: []int{13, 31, 50, 68, 86, 105, 127, 144, 159},
		},
		Courses: []models.Course{
			// Semester 1
			{Code: "CIB", Name: "Competencias idiomáticas básicas", Credits: 2, Semester: 1, Category: models.CategoryRegular},
			{Code: "CBAS", Name: "Ciencias básicas", Credits: 6, Semester: 1, Category: models.CategoryRegular},
			{Code: "MORF1", Name: "Morfofisiología I", Credits: 6, Semester: 1, Category: models.CategoryRegular},
			{Code: "FFIS", Name: "Fundamentos de Fisioterapia", Credits: 3, Semester: 1, Category: models.CategoryRegular},
			{Code: "ING1", Name: "Inglés 1", Credits: 2, Semester: 1, Category: models.CategoryEnglish},

			// Semester 2
			{Code: "MORF2", Name: "Morfofisiología II", Credits: 6, Semester: 2, Category: models.CategoryRegular,
				Prerequisites: []string{"MORF1", "CBAS"}},
			{Code: "DMH", Name: "Desarrollo motor humano", Credits: 2, Semester: 2, Category: models.CategoryRegular},
			{Code: "PSAP", Name: "Psicología del aprendizaje", Credits: 2, Semester: 2, Category: models.CategoryRegular},
			{Code: "CBD", Name: "Competencias básicas digitales", Credits: 3, Semester: 2, Category: models.CategoryRegular},
			{Code: "ING2", Name: "Inglés 2", Credits: 3, Semester: 2, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1"}},
			{Code: "CORE1", Name: "Core Currículum Persona y Cultura I", Credits: 2, Semester: 2, Category: models.CategoryCoreCurriculum},

			// Semester 3
			{Code: "CSMC", Name: "Condiciones de salud y movimiento corporal humano", Credits: 4, Semester: 3, Category: models.CategoryRegular,
				Prerequisites: []string{"MORF2"}},
			{Code: "BIOM", Name: "Biomecánica", Credits: 6, Semester: 3, Category: models.CategoryRegular,
				Prerequisites: []string{"MORF2"}},
			{Code: "SMMC", Name: "Salud mental y movimiento corporal humano", Credits: 4, Semester: 3, Category: models.CategoryRegular},
			{Code: "ING3", Name: "Inglés 3", Credits: 3, Semester: 3, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1", "ING2"}},
			{Code: "CORE2", Name: "Core Currículum Persona y Cultura II", Credits: 2, Semester: 3, Category: models.CategoryCoreCurriculum,
				Prerequisites: []string{"CORE1"}},

			// Semester 4
			{Code: "EDF1", Name: "Evaluación y diagnóstico fisioterapéutico I", Credits: 4, Semester: 4, Category: models.CategoryRegular,
				Prerequisites: []string{"CSMC", "BIOM"}},
			{Code: "TECF", Name: "Tecnología en fisioterapia", Credits: 4, Semester: 4, Category: models.CategoryRegular},
			{Code: "FPE", Name: "Fisiología y prescripción del ejercicio", Credits: 3, Semester: 4, Category: models.CategoryRegular,
				Prerequisites: []string{"MORF2"}},
			{Code: "PRECAL", Name: "Precálculo", Credits: 2, Semester: 4, Category: models.CategoryIntersemester},
			{Code: "ING4", Name: "Inglés 4", Credits: 3, Semester: 4, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1", "ING2", "ING3"}},
			{Code: "CORE3", Name: "Core Currículum Persona y Cultura III", Credits: 2, Semester: 4, Category: models.CategoryCoreCurriculum,
				Prerequisites: []string{"CORE1", "CORE2"}},

			// Semester 5
			{Code: "BIOEST", Name: "Bioestadística y epidemiología", Credits: 2, Semester: 5, Category: models.CategoryRegular,
				Prerequisites: []string{"PRECAL"}},
			{Code: "EDF2", Name: "Evaluación y diagnóstico fisioterapéutico II", Credits: 4, Semester: 5, Category: models.CategoryRegular,
				Prerequisites: []string{"EDF1", "ING3"}},
			{Code: "PIF1", Name: "Procesos de interacción fisioterapéutica I", Credits: 4, Semester: 5, Category: models.CategoryRegular,
				Prerequisites: []string{"EDF1"}},
			{Code: "FSP", Name: "Fundamentos de salud pública", Credits: 3, Semester: 5, Category: models.CategoryRegular},
			{Code: "ING5", Name: "Inglés 5", Credits: 3, Semester: 5, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1", "ING2", "ING3", "ING4"}},
			{Code: "CORE4", Name: "Core Currículum Persona y Cultura IV", Credits: 2, Semester: 5, Category: models.CategoryCoreCurriculum,
				Prerequisites: []string{"CORE1", "CORE2", "CORE3"}},

			// Semester 6
			{Code: "INV1", Name: "Investigación I", Credits: 2, Semester: 6, Category: models.CategoryRegular,
				Prerequisites: []string{"BIOEST"}},
			{Code: "PIF2", Name: "Procesos de interacción fisioterapéutica II", Credits: 4, Semester: 6, Category: models.CategoryRegular,
				Prerequisites: []string{"EDF2"}},
			{Code: "PFSP", Name: "Práctica formativa en Salud Pública", Credits: 5, Semester: 6, Category: models.CategoryRegular,
				Prerequisites: []string{"DMH", "FSP", "EDF2"},
				Corequisites:  []string{"ESP"}},
			{Code: "ESP", Name: "Educación en salud y programas", Credits: 2, Semester: 6, Category: models.CategoryRegular,
				Corequisites: []string{"PFSP"}},
			{Code: "ING6", Name: "Inglés 6", Credits: 3, Semester: 6, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1", "ING2", "ING3", "ING4", "ING5"}},
			{Code: "CORE5", Name: "Core Currículum Persona y Cultura V", Credits: 3, Semester: 6, Category: models.CategoryCoreCurriculum,
				Prerequisites: []string{"CORE1", "CORE2", "CORE3", "CORE4"}},

			// Semester 7
			{Code: "INV2", Name: "Investigación II", Credits: 2, Semester: 7, Category: models.CategoryRegular,
				Prerequisites: []string{"INV1"}},
			{Code: "ADGP", Name: "Administración y gestión de proyectos en fisioterapia", Credits: 4, Semester: 7, Category: models.CategoryRegular},
			{Code: "PFI1", Name: "Práctica formativa integral I", Credits: 9, Semester: 7, Category: models.CategoryRegular,
				Prerequisites: []string{"PIF2", "PFSP", "TECF", "ING5"}},
			{Code: "PROF1", Name: "Profundización I", Credits: 4, Semester: 7, Category: models.CategoryRegular,
				Prerequisites: []string{"PFSP"}},
			{Code: "ING7", Name: "Inglés 7", Credits: 3, Semester: 7, Category: models.CategoryEnglish,
				Prerequisites: []string{"ING1", "ING2", "ING3", "ING4", "ING5", "ING6"}},

			// Semester 8
			{Code: "RSEM3", Name: "Research seminar III", Credits: 2, Semester: 8, Category: models.CategoryRegular,
				Prerequisites: []string{"INV2"}},
			{Code: "PFI2", Name: "Práctica formativa integral II", Credits: 9, Semester: 8, Category: models.CategoryRegular,
				Prerequisites: []string{"PFI1"}},
			{Code: "PROF2", Name: "Profundización II", Credits: 4, Semester: 8, Category: models.CategoryRegular,
				Prerequisites: []string{"PFI1"}},
			{Code: "EEMP", Name: "Espíritu emprendedor", Credits: 2, Semester: 8, Category: models.CategoryRegular},

			// Semester 9
			{Code: "OPG1", Name: "Opción de grado I", Credits: 2, Semester: 9, Category: models.CategoryRegular,
				Prerequisites: []string{"RSEM3"}},
			{Code: "PPR1", Name: "Práctica de profundización I", Credits: 9, Semester: 9, Category: models.CategoryRegular,
				Prerequisites: []string{"ING7", "PROF1", "PFI2"}},
			{Code: "ELE1", Name: "Electiva 1", Credits: 2, Semester: 9, Category: models.CategoryRegular},
			{Code: "ELE2", Name: "Electiva 2", Credits: 2, Semester: 9, Category: models.CategoryRegular},

			// Semester 10
			{Code: "OPG2", Name: "Opción de grado II", Credits: 2, Semester: 10, Category: models.CategoryRegular,
				Prerequisites: []string{"OPG1"}},
			{Code: "PPR2", Name: "Práctica de profundización II", Credits: 9, Semester: 10, Category: models.CategoryRegular,
				Prerequisites: []string{"PROF2", "PPR1"}},
			{Code: "ELE3", Name: "Electiva 3", Credits: 2, Semester: 10, Category: models.CategoryRegular},
			{Code: "ELE4", Name: "Electiva 4", Credits: 2, Semester: 10, Category: models.CategoryRegular},
		},
	}
}
