package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdrincon/acadplan/internal/app/models"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
)

// CatalogRepository handles database operations for program catalogs
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

// ListPrograms retrieves all programs with their semester load tables
func (r *CatalogRepository) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	query := `
		SELECT id, slug, name, total_credits
		FROM programs
		ORDER BY slug
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(
			&program.ID,
			&program.Slug,
			&program.Name,
			&program.TotalCredits,
		); err != nil {
			return nil, err
		}
		programs = append(programs, &program)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, program := range programs {
		if err := r.loadSemesterTable(ctx, program); err != nil {
			return nil, err
		}
	}

	return programs, nil
}

// GetProgram retrieves a program by slug, including its semester load table
func (r *CatalogRepository) GetProgram(ctx context.Context, slug string) (*models.Program, error) {
	query := `
		SELECT id, slug, name, total_credits
		FROM programs
		WHERE slug = $1
	`

	var program models.Program
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&program.ID,
		&program.Slug,
		&program.Name,
		&program.TotalCredits,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}

	if err := r.loadSemesterTable(ctx, &program); err != nil {
		return nil, err
	}

	return &program, nil
}

// loadSemesterTable fills StandardLoad and PlacementThresholds for a program
func (r *CatalogRepository) loadSemesterTable(ctx context.Context, program *models.Program) error {
	query := `
		SELECT semester, standard_credits, max_cumulative_credits
		FROM program_semesters
		WHERE program_id = $1
		ORDER BY semester
	`

	rows, err := r.db.Query(ctx, query, program.ID)
	if err != nil {
		return fmt.Errorf("error retrieving program semesters: %w", err)
	}
	defer rows.Close()

	program.StandardLoad = make(map[int]int)
	program.PlacementThresholds = nil

	type band struct {
		semester int
		max      *int
	}
	var bands []band
	for rows.Next() {
		var b band
		var credits int
		if err := rows.Scan(&b.semester, &credits, &b.max); err != nil {
			return err
		}
		program.StandardLoad[b.semester] = credits
		bands = append(bands, b)
	}

	if err := rows.Err(); err != nil {
		return err
	}

	sort.Slice(bands, func(i, j int) bool { return bands[i].semester < bands[j].semester })
	for _, b := range bands {
		// The final semester carries no threshold; everyone past the last
		// band is placed there.
		if b.max != nil {
			program.PlacementThresholds = append(program.PlacementThresholds, *b.max)
		}
	}

	return nil
}

// GetProgramCourses retrieves a program's full course list, with
// prerequisite and corequisite relations attached, in catalog order
func (r *CatalogRepository) GetProgramCourses(ctx context.Context, slug string) ([]models.Course, error) {
	program, err := r.GetProgram(ctx, slug)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, program_id, code, name, credits, semester, category
		FROM courses
		WHERE program_id = $1
		ORDER BY semester, code
	`

	rows, err := r.db.Query(ctx, query, program.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	index := make(map[int64]int)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.ProgramID,
			&course.Code,
			&course.Name,
			&course.Credits,
			&course.Semester,
			&course.Category,
		); err != nil {
			return nil, err
		}
		index[course.ID] = len(courses)
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, program.ID, "course_prerequisites", "prerequisite_code", courses, index, func(c *models.Course, code string) {
		c.Prerequisites = append(c.Prerequisites, code)
	}); err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, program.ID, "course_corequisites", "corequisite_code", courses, index, func(c *models.Course, code string) {
		c.Corequisites = append(c.Corequisites, code)
	}); err != nil {
		return nil, err
	}

	return courses, nil
}

// loadRelations attaches one relation table's codes to the course list
func (r *CatalogRepository) loadRelations(ctx context.Context, programID int64, table, column string, courses []models.Course, index map[int64]int, attach func(*models.Course, string)) error {
	query := fmt.Sprintf(`
		SELECT rel.course_id, rel.%s
		FROM %s rel
		JOIN courses c ON c.id = rel.course_id
		WHERE c.program_id = $1
		ORDER BY rel.course_id, rel.%s
	`, column, table, column)

	rows, err := r.db.Query(ctx, query, programID)
	if err != nil {
		return fmt.Errorf("error retrieving %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID int64
		var code string
		if err := rows.Scan(&courseID, &code); err != nil {
			return err
		}
		if i, ok := index[courseID]; ok {
			attach(&courses[i], code)
		}
	}

	return rows.Err()
}

// CreateProgram inserts a program with its semester table. Used by seeding.
func (r *CatalogRepository) CreateProgram(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programs (slug, name, total_credits)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO NOTHING
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, program.Slug, program.Name, program.TotalCredits).Scan(&program.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating program: %w", err)
	}

	semesters := make([]int, 0, len(program.StandardLoad))
	for semester := range program.StandardLoad {
		semesters = append(semesters, semester)
	}
	sort.Ints(semesters)

	for i, semester := range semesters {
		var max *int
		if i < len(program.PlacementThresholds) {
			max = &program.PlacementThresholds[i]
		}
		_, err := r.db.Exec(ctx, `
			INSERT INTO program_semesters (program_id, semester, standard_credits, max_cumulative_credits)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (program_id, semester) DO NOTHING`,
			program.ID, semester, program.StandardLoad[semester], max)
		if err != nil {
			return fmt.Errorf("error creating program semester: %w", err)
		}
	}

	return nil
}

// CreateCourse inserts a course with its relations. Used by seeding.
func (r *CatalogRepository) CreateCourse(ctx context.Context, programID int64, course *models.Course) error {
	query := `
		INSERT INTO courses (program_id, code, name, credits, semester, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (program_id, code) DO NOTHING
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		programID, course.Code, course.Name, course.Credits, course.Semester, course.Category).Scan(&course.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	for _, prereq := range course.Prerequisites {
		_, err := r.db.Exec(ctx, `
			INSERT INTO course_prerequisites (course_id, prerequisite_code)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			course.ID, prereq)
		if err != nil {
			return fmt.Errorf("error creating prerequisite relation: %w", err)
		}
	}

	for _, coreq := range course.Corequisites {
		_, err := r.db.Exec(ctx, `
			INSERT INTO course_corequisites (course_id, corequisite_code)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			course.ID, coreq)
		if err != nil {
			return fmt.Errorf("error creating corequisite relation: %w", err)
		}
	}

	return nil
}
