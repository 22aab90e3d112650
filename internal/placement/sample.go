package placement

import "time"

func pkg(v float64) *float64 { return &v }

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Sample returns the built-in demo dataset used when no dataset file is configured.
// Every call returns a fresh copy.
func Sample() *Dataset {
	return &Dataset{
		Candidates: []Candidate{
			{ID: "1", Name: "Aarav Sharma", Branch: "CSE", GPA: 9.2, Skills: []string{"React", "Node.js", "Python", "Java"}, Projects: 4, Internships: 2, Placed: true, CompanyID: "c1", Package: pkg(18), ResumeText: "Expert in React and Node.js with 2 internships."},
			{ID: "2", Name: "Vihaan Gupta", Branch: "CSE", GPA: 8.5, Skills: []string{"C++", "DSA", "SQL"}, Projects: 2, Internships: 1, Placed: true, CompanyID: "c2", Package: pkg(12)},
			{ID: "3", Name: "Aditi Singh", Branch: "ECE", GPA: 7.8, Skills: []string{"Verilog", "Embedded C", "IoT"}, Projects: 3, Internships: 1},
			{ID: "4", Name: "Riya Patel", Branch: "IT", GPA: 8.9, Skills: []string{"Java", "Spring Boot", "AWS"}, Projects: 3, Internships: 2, Placed: true, CompanyID: "c1", Package: pkg(16)},
			{ID: "5", Name: "Karan Mehta", Branch: "MECH", GPA: 7.5, Skills: []string{"AutoCAD", "SolidWorks"}, Projects: 2},
			{ID: "6", Name: "Sneha Reddy", Branch: "CSE", GPA: 9.5, Skills: []string{"AI", "ML", "Python", "TensorFlow", "React"}, Projects: 5, Internships: 3, Placed: true, CompanyID: "c1", Package: pkg(22)},
			{ID: "7", Name: "Rahul Verma", Branch: "ECE", GPA: 6.8, Skills: []string{"C", "Basic Electronics"}, Projects: 1},
			{ID: "8", Name: "Ishaan Kumar", Branch: "IT", GPA: 8.2, Skills: []string{"JavaScript", "HTML", "CSS"}, Projects: 2, Internships: 1, Placed: true, CompanyID: "c3", Package: pkg(8)},
		},
		Organizations: []Organization{
			{ID: "c1", Name: "TechNova", MinGPA: 8.5, Role: "SDE II", Package: 18, Hires: 12, ArrivalDate: date("2023-09-15"), Rounds: 4,
				RequiredSkills: []string{"React", "Node.js", "AWS", "DSA"},
				SalaryTrend:    []TrendPoint{{2021, 14}, {2022, 16}, {2023, 18}}},
			{ID: "c2", Name: "InnoSystems", MinGPA: 7.5, Role: "System Engineer", Package: 12, Hires: 25, ArrivalDate: date("2023-09-20"), Rounds: 3,
				RequiredSkills: []string{"Java", "SQL", "C++"},
				SalaryTrend:    []TrendPoint{{2021, 9}, {2022, 10.5}, {2023, 12}}},
			{ID: "c3", Name: "DataCorp", MinGPA: 7.0, Role: "Data Analyst", Package: 8, Hires: 15, ArrivalDate: date("2023-10-05"), Rounds: 2,
				RequiredSkills: []string{"Python", "Excel", "SQL"},
				SalaryTrend:    []TrendPoint{{2021, 6}, {2022, 7}, {2023, 8}}},
			{ID: "c4", Name: "CoreMech", MinGPA: 6.5, Role: "Graduate Trainee", Package: 6.5, Hires: 5, ArrivalDate: date("2023-10-15"), Rounds: 2,
				RequiredSkills: []string{"AutoCAD", "Thermodynamics"},
				SalaryTrend:    []TrendPoint{{2021, 5}, {2022, 5.5}, {2023, 6.5}}},
			{ID: "c5", Name: "Google", MinGPA: 9.0, Role: "Software Engineer", Package: 32, Hires: 4, ArrivalDate: date("2023-08-20"), Rounds: 5,
				RequiredSkills: []string{"DSA", "System Design", "C++", "Python"},
				SalaryTrend:    []TrendPoint{{2021, 28}, {2022, 30}, {2023, 32}}},
			{ID: "c6", Name: "Microsoft", MinGPA: 8.8, Role: "SDE I", Package: 45, Hires: 8, ArrivalDate: date("2023-08-25"), Rounds: 4,
				RequiredSkills: []string{"Azure", "C#", "DSA"},
				SalaryTrend:    []TrendPoint{{2021, 40}, {2022, 42}, {2023, 45}}},
			{ID: "c7", Name: "Amazon", MinGPA: 8.5, Role: "SDE", Package: 28, Hires: 20, ArrivalDate: date("2023-09-01"), Rounds: 4,
				RequiredSkills: []string{"AWS", "Java", "DSA"},
				SalaryTrend:    []TrendPoint{{2021, 25}, {2022, 26.5}, {2023, 28}}},
			{ID: "c8", Name: "Tesla", MinGPA: 8.0, Role: "Autopilot Engineer", Package: 25, Hires: 3, ArrivalDate: date("2023-11-10"), Rounds: 5,
				RequiredSkills: []string{"Python", "Computer Vision", "C++"},
				SalaryTrend:    []TrendPoint{{2021, 20}, {2022, 22}, {2023, 25}}},
		},
	}
}
