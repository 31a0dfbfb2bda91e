package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHero(t *testing.T) {
	t.Run("creates hero with valid inputs", func(t *testing.T) {
		hero, err := NewHero("Jane Doe", "Software Engineer", "I build things")
		require.NoError(t, err)
		require.NotNil(t, hero)

		assert.Equal(t, "Jane Doe", hero.Name)
		assert.Equal(t, "Software Engineer", hero.Role)
		assert.Equal(t, "I build things", hero.Headline)
		assert.Empty(t, hero.ProfileImage)
		assert.NotEmpty(t, hero.ID)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		hero, err := NewHero("  Jane  ", " Engineer ", " Headline ")
		require.NoError(t, err)
		assert.Equal(t, "Jane", hero.Name)
		assert.Equal(t, "Engineer", hero.Role)
		assert.Equal(t, "Headline", hero.Headline)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewHero("", "Engineer", "Headline")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name is required")
	})

	t.Run("fails with blank role", func(t *testing.T) {
		_, err := NewHero("Jane", "   ", "Headline")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Role is required")
	})
}

func TestHeroUpdate(t *testing.T) {
	hero, err := NewHero("Jane", "Engineer", "Headline")
	require.NoError(t, err)
	hero.SetProfileImage("123-photo.png")

	t.Run("keeps profile image across text updates", func(t *testing.T) {
		require.NoError(t, hero.Update("Jane Doe", "Staff Engineer", "New headline"))
		assert.Equal(t, "Jane Doe", hero.Name)
		assert.Equal(t, "123-photo.png", hero.ProfileImage)
	})

	t.Run("rejects empty headline", func(t *testing.T) {
		err := hero.Update("Jane", "Engineer", "")
		require.Error(t, err)
	})
}

func TestNewAbout(t *testing.T) {
	t.Run("creates about with two points", func(t *testing.T) {
		about, err := NewAbout([]string{"First point", "Second point"})
		require.NoError(t, err)
		assert.Len(t, about.Points, 2)
	})

	t.Run("trims and drops blank points", func(t *testing.T) {
		about, err := NewAbout([]string{" one ", "", "two", "   "})
		require.NoError(t, err)
		assert.Equal(t, StringList{"one", "two"}, about.Points)
	})

	t.Run("fails with fewer than two points", func(t *testing.T) {
		_, err := NewAbout([]string{"only one"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "At least 2 points")
	})

	t.Run("fails when blanks reduce the list below two", func(t *testing.T) {
		_, err := NewAbout([]string{"one", "  "})
		require.Error(t, err)
	})
}

func TestNewSkill(t *testing.T) {
	t.Run("creates skill with valid inputs", func(t *testing.T) {
		skill, err := NewSkill("Go", "Backend", "#00ADD8", "123-go.png")
		require.NoError(t, err)

		assert.Equal(t, "Go", skill.Name)
		assert.Equal(t, SkillCategoryBackend, skill.Category)
		assert.Equal(t, "#00ADD8", skill.Color)
		assert.Equal(t, "123-go.png", skill.Icon)
	})

	t.Run("fails without icon", func(t *testing.T) {
		_, err := NewSkill("Go", "Backend", "#00ADD8", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Icon is required")
	})

	t.Run("fails with unknown category", func(t *testing.T) {
		_, err := NewSkill("Go", "Gardening", "#00ADD8", "icon.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Category must be one of")
	})

	t.Run("update keeps icon", func(t *testing.T) {
		skill, err := NewSkill("Go", "Backend", "#00ADD8", "123-go.png")
		require.NoError(t, err)
		require.NoError(t, skill.Update("Golang", "Tools", "#FFFFFF"))
		assert.Equal(t, "Golang", skill.Name)
		assert.Equal(t, SkillCategoryTools, skill.Category)
		assert.Equal(t, "123-go.png", skill.Icon)
	})
}

func TestNewExperience(t *testing.T) {
	t.Run("creates experience with valid inputs", func(t *testing.T) {
		exp, err := NewExperience("Engineer", "Acme", "Remote", "Jan 2022", "Dec 2023", []string{"did things"})
		require.NoError(t, err)

		assert.Equal(t, "Engineer", exp.Role)
		assert.Equal(t, "Acme", exp.Company)
		assert.Equal(t, "Dec 2023", exp.EndDate)
	})

	t.Run("defaults end date to Present", func(t *testing.T) {
		exp, err := NewExperience("Engineer", "Acme", "", "Jan 2024", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "Present", exp.EndDate)
	})

	t.Run("fails without role", func(t *testing.T) {
		_, err := NewExperience("", "Acme", "", "Jan 2024", "", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Role is required")
	})

	t.Run("fails without start date", func(t *testing.T) {
		_, err := NewExperience("Engineer", "Acme", "", "", "", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Start date is required")
	})
}

func TestNewProject(t *testing.T) {
	t.Run("creates project with valid inputs", func(t *testing.T) {
		project, err := NewProject("Site", "A website", []string{"fast"}, []string{"Go"}, "https://example.com", "")
		require.NoError(t, err)

		assert.Equal(t, "Site", project.Title)
		assert.Equal(t, StringList{"Go"}, project.TechStack)
		assert.Empty(t, project.Thumbnail)
	})

	t.Run("fails without points", func(t *testing.T) {
		_, err := NewProject("Site", "A website", nil, []string{"Go"}, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Points are required")
	})

	t.Run("fails without tech stack", func(t *testing.T) {
		_, err := NewProject("Site", "A website", []string{"fast"}, nil, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Tech stack is required")
	})
}

func TestNewEducation(t *testing.T) {
	t.Run("creates education with valid inputs", func(t *testing.T) {
		edu, err := NewEducation("BSc", "State University", "Springfield", "2018", "2022")
		require.NoError(t, err)
		assert.Equal(t, "BSc", edu.Degree)
		assert.Equal(t, "2022", edu.EndYear)
	})

	t.Run("fails without institute", func(t *testing.T) {
		_, err := NewEducation("BSc", "", "", "2018", "2022")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Institute is required")
	})

	t.Run("fails without end year", func(t *testing.T) {
		_, err := NewEducation("BSc", "State University", "", "2018", "")
		require.Error(t, err)
	})
}

func TestNewCertification(t *testing.T) {
	t.Run("creates certification with title only", func(t *testing.T) {
		cert, err := NewCertification("AWS SAA", "", "")
		require.NoError(t, err)
		assert.Equal(t, "AWS SAA", cert.Title)
	})

	t.Run("fails without title", func(t *testing.T) {
		_, err := NewCertification("", "Amazon", "2024")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Title is required")
	})
}

func TestNewFooter(t *testing.T) {
	t.Run("creates footer with valid inputs", func(t *testing.T) {
		footer, err := NewFooter("https://github.com/jane", "https://linkedin.com/in/jane", "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", footer.Email)
		assert.Empty(t, footer.Resume)
	})

	t.Run("fails without github link", func(t *testing.T) {
		_, err := NewFooter("", "https://linkedin.com/in/jane", "jane@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Github link is required")
	})
}

func TestStringListScan(t *testing.T) {
	t.Run("round-trips through driver value", func(t *testing.T) {
		original := StringList{"a", "b"}
		value, err := original.Value()
		require.NoError(t, err)

		var scanned StringList
		require.NoError(t, scanned.Scan(value))
		assert.Equal(t, original, scanned)
	})

	t.Run("scans nil as empty list", func(t *testing.T) {
		var list StringList
		require.NoError(t, list.Scan(nil))
		assert.Empty(t, list)
	})

	t.Run("scans string input", func(t *testing.T) {
		var list StringList
		require.NoError(t, list.Scan(`["x","y"]`))
		assert.Equal(t, StringList{"x", "y"}, list)
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		var list StringList
		require.Error(t, list.Scan(42))
	})
}
