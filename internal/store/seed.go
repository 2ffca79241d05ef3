package store

import (
	"time"

	"github.com/example/studycoach/internal/models"
)

// DefaultState builds a fresh document around the stock two-year AI/ML
// career-transition roadmap.
func DefaultState(now time.Time) *models.State {
	return &models.State{
		Roadmap:   defaultRoadmap(now),
		Progress:  models.ProgressState{UpdatedAt: now},
		Resources: []models.Resource{},
		Decks:     []models.Deck{},
		Projects:  []models.Project{},
		Tips:      []models.WeeklyTip{},
		UpdatedAt: now,
	}
}

func defaultRoadmap(now time.Time) models.Roadmap {
	year1 := models.Year{
		YearNum:     1,
		Name:        "Year 1: AI/ML Foundations",
		Description: "Master fundamentals: Python, Math, Classical ML, Basic Deep Learning",
		FocusAreas:  []string{"Python Programming", "Mathematics for ML", "Classical ML", "Deep Learning Basics", "Portfolio Start"},
		Status:      models.MilestoneNotStarted,
		Quarters: []models.Quarter{
			{
				QuarterNum:  1,
				Name:        "Q1: Python & Math Foundations",
				Description: "Build solid programming and mathematical foundation",
				FocusAreas:  []string{"Python", "Linear Algebra", "Calculus", "Probability & Statistics"},
				Status:      models.MilestoneNotStarted,
				Months: []models.Month{
					{
						MonthNum:    1,
						Name:        "Python Essentials",
						Description: "Master Python for ML",
						Status:      models.MilestoneNotStarted,
						Weeks: []models.Week{
							week(1, "Setup & Basics", "Environment setup, syntax, OOP concepts",
								task("w1_t1", "Install Python & tools", "Set up environment, Jupyter, git"),
								task("w1_t2", "Python basics", "Variables, control flow, functions"),
								task("w1_t3", "OOP fundamentals", "Classes, inheritance, polymorphism"),
							),
							week(2, "Libraries & Data", "NumPy, Pandas fundamentals",
								task("w2_t1", "NumPy fundamentals", "Arrays, operations, broadcasting"),
								task("w2_t2", "Pandas basics", "DataFrames, indexing, groupby"),
								task("w2_t3", "Data visualization", "Matplotlib, Seaborn basics"),
							),
							week(3, "Advanced Python", "Functional programming, testing",
								task("w3_t1", "Functional programming", "Lambda, map, filter, comprehensions"),
								task("w3_t2", "Testing & debugging", "Unit tests and fixtures"),
								task("w3_t3", "Code quality", "Linting, formatting, documentation"),
							),
							week(4, "Python Project", "Small project exercise",
								task("w4_t1", "Project planning", "Design simple data tool"),
								task("w4_t2", "Implementation", "Build & test"),
								task("w4_t3", "Documentation", "README, comments, examples"),
							),
						},
					},
					{
						MonthNum:    2,
						Name:        "Linear Algebra",
						Description: "Mathematical foundation for ML",
						Status:      models.MilestoneNotStarted,
						Weeks: []models.Week{
							week(1, "Vectors & Matrices", "Core concepts",
								task("v1_t1", "Vector operations", "Dot product, norms, angles"),
								task("v1_t2", "Matrix operations", "Multiplication, transpose, rank"),
							),
							week(2, "Decompositions", "Eigenvalues, SVD",
								task("v2_t1", "Eigenvalues/eigenvectors", "Understanding spectral decomposition"),
								task("v2_t2", "SVD & applications", "Dimensionality reduction"),
							),
							week(3, "Advanced Topics", "Norms, distances, projections",
								task("v3_t1", "Norms & distances", "L1, L2, Euclidean"),
								task("v3_t2", "Linear transformations", "Projections and rotations"),
							),
							week(4, "LA for ML", "Practical applications",
								task("v4_t1", "LA in ML", "Covariance, PCA concepts"),
							),
						},
					},
					{
						MonthNum:    3,
						Name:        "Calculus & Probability",
						Description: "Optimization and uncertainty",
						Status:      models.MilestoneNotStarted,
						Weeks: []models.Week{
							week(1, "Single Variable Calculus", "Derivatives, optimization",
								task("c1_t1", "Derivatives", "Limits, definition, rules"),
								task("c1_t2", "Optimization", "Critical points, gradients"),
							),
							week(2, "Multivariable Calculus", "Gradients, Hessians",
								task("c2_t1", "Partial derivatives", "Multivariable chain rule"),
								task("c2_t2", "Optimization", "Gradient descent intuition"),
							),
							week(3, "Probability Fundamentals", "Distributions, independence",
								task("c3_t1", "Basic probability", "Rules, conditional probability"),
								task("c3_t2", "Distributions", "Normal, exponential, Poisson"),
							),
							week(4, "Statistics Essentials", "Hypothesis testing, estimation",
								task("c4_t1", "Descriptive statistics", "Mean, variance, correlation"),
								task("c4_t2", "Inference basics", "Hypothesis testing concepts"),
							),
						},
					},
				},
			},
			{
				QuarterNum:  2,
				Name:        "Q2: Classical ML Fundamentals",
				Description: "Regression, classification, and evaluation",
				FocusAreas:  []string{"Regression", "Classification", "Evaluation Metrics", "Feature Engineering"},
				Status:      models.MilestoneNotStarted,
				Months: []models.Month{
					{
						MonthNum:    1,
						Name:        "Regression & Linear Models",
						Description: "Linear & logistic regression",
						Status:      models.MilestoneNotStarted,
						Weeks: []models.Week{
							week(1, "Linear Regression", "Theory and practice",
								task("lr1", "Linear regression theory", "OLS, assumptions, diagnostics"),
								task("lr2", "Library usage", "Fit, predict, evaluate"),
								task("lr3", "Regularization", "Ridge, Lasso, ElasticNet"),
							),
							week(2, "Logistic Regression", "Binary and multiclass",
								task("log1", "Logistic regression", "Sigmoid, cross-entropy loss"),
								task("log2", "Binary classification", "Decision boundaries"),
								task("log3", "Multiclass methods", "One-vs-Rest, multinomial"),
							),
							week(3, "Feature Engineering", "Preprocessing and selection",
								task("fe1", "Feature scaling", "Normalization, standardization"),
								task("fe2", "Feature selection", "Univariate, recursive, model-based"),
								task("fe3", "Handling missing data", "Imputation strategies"),
							),
							week(4, "Evaluation Metrics", "Measuring model performance",
								task("em1", "Regression metrics", "MSE, R2, MAE"),
								task("em2", "Classification metrics", "Accuracy, precision, recall, F1, AUC"),
							),
						},
					},
				},
			},
			{
				QuarterNum:  3,
				Name:        "Q3: Advanced Classical ML",
				Description: "Tree-based methods, ensembles, clustering",
				FocusAreas:  []string{"Decision Trees", "Ensemble Methods", "Clustering", "Dimensionality Reduction"},
				Status:      models.MilestoneNotStarted,
			},
			{
				QuarterNum:  4,
				Name:        "Q4: Deep Learning Basics & Portfolio",
				Description: "Neural networks and first major project",
				FocusAreas:  []string{"Neural Network Basics", "CNNs", "RNNs", "First Portfolio Project"},
				Status:      models.MilestoneNotStarted,
			},
		},
	}

	year2 := models.Year{
		YearNum:     2,
		Name:        "Year 2: Advanced AI/ML & Specialization",
		Description: "LLMs, GenAI, MLOps, System Design, Specialization",
		FocusAreas:  []string{"Transformers & LLMs", "MLOps & Deployment", "System Design", "Specialization Domains", "Advanced Portfolio"},
		Status:      models.MilestoneNotStarted,
		Quarters: []models.Quarter{
			{
				QuarterNum:  1,
				Name:        "Q1: Transformers & LLMs",
				Description: "Attention, transformers, and large language models",
				FocusAreas:  []string{"Attention Mechanism", "Transformer Architecture", "Pre-trained LLMs", "Fine-tuning"},
				Status:      models.MilestoneNotStarted,
			},
			{
				QuarterNum:  2,
				Name:        "Q2: GenAI & RAG",
				Description: "Generative AI, prompt engineering, RAG systems",
				FocusAreas:  []string{"Prompt Engineering", "RAG Systems", "Vector Databases", "GenAI Applications"},
				Status:      models.MilestoneNotStarted,
			},
			{
				QuarterNum:  3,
				Name:        "Q3: MLOps & System Design",
				Description: "Production ML, deployment, and system design",
				FocusAreas:  []string{"ML Pipeline Design", "Model Serving", "Monitoring", "Scalability"},
				Status:      models.MilestoneNotStarted,
			},
			{
				QuarterNum:  4,
				Name:        "Q4: Interview Prep & Portfolio Polish",
				Description: "Final preparation for target roles",
				FocusAreas:  []string{"System Design Interviews", "ML Design Questions", "Portfolio Review", "Networking"},
				Status:      models.MilestoneNotStarted,
			},
		},
	}

	return models.Roadmap{
		Years:     []models.Year{year1, year2},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func week(num int, name, description string, tasks ...models.Task) models.Week {
	return models.Week{
		WeekNum:     num,
		Name:        name,
		Description: description,
		Tasks:       tasks,
		Status:      models.MilestoneNotStarted,
	}
}

func task(id, name, description string) models.Task {
	return models.Task{
		ID:          id,
		Name:        name,
		Description: description,
		Status:      models.MilestoneNotStarted,
		Priority:    1,
	}
}
