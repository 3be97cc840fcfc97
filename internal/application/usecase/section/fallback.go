package section

import "github.com/khoahotran/portfolio/internal/domain/portfolio"

// Static datasets shown when the backend cannot be reached. Each function
// returns a fresh copy.

func str(s string) *string { return &s }

func num(n int) *int { return &n }

func score(f float64) *float64 { return &f }

const fallbackBio = "I am a computer programming enthusiast who loves designing and developing products. " +
	"I would love investing my time solving complex problems. I have always been a hardworking individual " +
	"who loves collaborating and working as a team to deliver high quality software products."

func FallbackSummary() portfolio.Summary {
	return portfolio.Summary{
		Name:            "Debojit Chakraborty",
		Email:           "devchakraborty9914@gmail.com",
		Bio:             str(fallbackBio),
		ExperienceCount: len(FallbackExperience()),
		ProjectCount:    len(FallbackProjects()),
		SkillCount:      len(FallbackSkills()),
		EducationCount:  len(FallbackEducation()),
	}
}

func FallbackExperience() []portfolio.Experience {
	return []portfolio.Experience{
		{
			ExperienceID: 1,
			Company:      "Akamai Technologies",
			Position:     "Senior Software Engineer",
			StartDate:    "2024-04-01",
			Description: str("Senior backend engineer of Akamai Test Center project. This application is used to test different " +
				"CDN configurations that users will be applying for their products in different edge sites. Pivoting the " +
				"migration of a critical micro-service currently running in AWS infra to Akamai's Linode cloud infra."),
			Technologies: str("Java 21, Spring Boot, Spring Cloud, Microservices, AWS, Linode, Docker, Kubernetes"),
			IsCurrent:    true,
		},
		{
			ExperienceID: 2,
			Company:      "Akamai Technologies",
			Position:     "Software Engineer II",
			StartDate:    "2020-10-01",
			EndDate:      str("2021-11-30"),
			Description: str("Worked as a backend developer for the project Akamai Test Center. Responsible for HLD, LLD and " +
				"development of multiple complex features for the project, mentored and guided juniors to deliver critical project features."),
			Technologies: str("Java 8/11, Spring Boot, Microservices, JPA, Hibernate, MySQL"),
		},
		{
			ExperienceID: 3,
			Company:      "Philips India Ltd",
			Position:     "Software Engineer II",
			StartDate:    "2018-09-01",
			EndDate:      str("2020-09-30"),
			Description: str("Worked as a backend engineer in a team named Population Connector to support data ingestion from EMR " +
				"vendors which are in FHIR data format. Designed LLD for the parsers, wrote them using Java 8 leveraging the FHIR APIs."),
			Technologies: str("Java 8, Spring Boot, FHIR APIs, REST APIs, JPA, Hibernate, Oracle, Maven"),
		},
		{
			ExperienceID: 4,
			Company:      "Philips India Ltd",
			Position:     "Software Engineer I",
			StartDate:    "2021-12-01",
			EndDate:      str("2024-03-31"),
			Description: str("The project is named Wellcentive used for analyzing patient healthcare records. Worked on creating " +
				"stateless, secure RESTful web services using Spring Boot for the applicable to ingest and transform healthcare records of patients."),
			Technologies: str("Java 8, Spring Boot, REST APIs, JPA, Hibernate, MySQL, JUnit, Mockito"),
		},
	}
}

func FallbackProjects() []portfolio.Project {
	return []portfolio.Project{
		{
			ProjectID:   1,
			ProjectName: "Akamai Test Center",
			Description: str("A comprehensive testing platform for CDN configurations across different edge sites. Designed and " +
				"delivered complex features like dynamic variables and variable group arrays which replicate compiler-like functionality for programming languages."),
			Technologies: str("Java 11/17, Spring Boot, Spring Cloud, Microservices, AWS, Docker, Kubernetes"),
			StartDate:    str("2020-10-01"),
		},
		{
			ProjectID:   2,
			ProjectName: "Healthcare Data Parser",
			Description: str("Complex parsers to extract patient details from different healthcare file formats (HL7, CCDA, Delimited files). " +
				"Developed BDD based unit testing framework for stakeholder review and automated testing."),
			Technologies: str("Java 8, Spring Boot, FHIR APIs, JUnit, Mockito, BDD, Oracle"),
			StartDate:    str("2018-09-01"),
			EndDate:      str("2020-09-30"),
		},
		{
			ProjectID:   3,
			ProjectName: "Portfolio Management System",
			Description: str("Full-stack portfolio management application with backend REST APIs and modern frontend. Features include " +
				"user management, project showcase, contact management, and comprehensive API documentation."),
			Technologies: str("Java 21, Spring Boot 3.4, MySQL, Docker, React, TypeScript, Tailwind CSS"),
			GithubURL:    str("https://github.com/debojit1996/portfolio-application"),
			LiveURL:      str("https://portfolio.debojit.dev"),
			StartDate:    str("2024-08-01"),
		},
		{
			ProjectID:   4,
			ProjectName: "Microservice Migration Tool",
			Description: str("Led the migration of critical ATC microservices from AWS to Linode cloud infrastructure. Implemented " +
				"architectural changes, logging, monitoring, and secret storage setup resulting in 20% cost reduction."),
			Technologies: str("Java 21, Spring Cloud, AWS, Linode, Docker, Kubernetes, Terraform"),
			StartDate:    str("2024-04-01"),
		},
	}
}

func skill(id int64, name, category, level string, years int, featured bool) portfolio.Skill {
	return portfolio.Skill{
		SkillID:          id,
		SkillName:        name,
		SkillCategory:    str(category),
		ProficiencyLevel: str(level),
		YearsExperience:  num(years),
		IsFeatured:       featured,
	}
}

func FallbackSkills() []portfolio.Skill {
	return []portfolio.Skill{
		skill(1, "Java", "Programming Language", "Expert", 7, true),
		skill(2, "TypeScript", "Programming Language", "Advanced", 3, false),
		skill(3, "JavaScript", "Programming Language", "Advanced", 4, false),

		skill(4, "Spring Boot", "Framework", "Expert", 6, true),
		skill(5, "Spring Cloud", "Framework", "Advanced", 4, true),
		skill(6, "React", "Framework", "Advanced", 3, false),

		skill(7, "Microservices", "Architecture", "Expert", 5, true),
		skill(8, "REST API", "Architecture", "Expert", 6, true),
		skill(9, "System Design", "Architecture", "Advanced", 5, false),

		skill(10, "MySQL", "Database", "Advanced", 5, false),
		skill(11, "Oracle", "Database", "Intermediate", 3, false),
		skill(12, "JPA/Hibernate", "Database", "Advanced", 5, false),

		skill(13, "AWS", "Cloud", "Intermediate", 4, false),
		skill(14, "Linode", "Cloud", "Intermediate", 2, false),
		skill(15, "Docker", "DevOps", "Intermediate", 3, false),
		skill(16, "Kubernetes", "DevOps", "Beginner", 2, false),

		skill(17, "JUnit", "Testing", "Advanced", 5, false),
		skill(18, "Mockito", "Testing", "Advanced", 5, false),
		skill(19, "BDD Testing", "Testing", "Advanced", 4, false),

		skill(20, "Maven", "Build Tool", "Advanced", 5, false),
		skill(21, "Gradle", "Build Tool", "Beginner", 2, false),
		skill(22, "Git", "Version Control", "Advanced", 7, false),

		skill(23, "Splunk", "Monitoring", "Intermediate", 3, false),
		skill(24, "Kibana", "Monitoring", "Intermediate", 2, false),
		skill(25, "Grafana", "Monitoring", "Beginner", 2, false),
	}
}

func FallbackEducation() []portfolio.Education {
	return []portfolio.Education{
		{
			EducationID:  1,
			Institution:  "NIT SILCHAR",
			Degree:       "Bachelor of Technology",
			FieldOfStudy: str("Computer Science & Engineering"),
			StartDate:    str("2014-01-01"),
			EndDate:      str("2018-12-31"),
			GPA:          score(8.99),
			Description: str("Computer Science & Engineering with focus on software development, algorithms, and system design. " +
				"Comprehensive curriculum covering data structures, algorithms, database systems, software engineering, and computer networks."),
		},
		{
			EducationID:  2,
			Institution:  "VKV DIBRUGARH, ASSAM",
			Degree:       "Higher Secondary",
			FieldOfStudy: str("Science Stream"),
			StartDate:    str("2012-01-01"),
			EndDate:      str("2014-12-31"),
			GPA:          score(9.46),
			Description: str("Higher Secondary education in Science stream with subjects including Physics, Chemistry, Mathematics, " +
				"and Computer Science. Achieved 94.6% marks with strong foundation in analytical and problem-solving skills."),
		},
		{
			EducationID:  3,
			Institution:  "VKV DIBRUGARH, ASSAM",
			Degree:       "H.S.L.C",
			FieldOfStudy: str("General"),
			StartDate:    str("2010-01-01"),
			EndDate:      str("2012-12-31"),
			GPA:          score(10.00),
			Description: str("High School Leaving Certificate with perfect GPA. Strong academic foundation with excellent performance " +
				"across all subjects including Mathematics, Science, and Languages."),
		},
	}
}
