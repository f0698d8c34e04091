package layout

// Dirs lists every directory of the project skeleton, relative to the
// project root, in creation order. Parents are created implicitly, so the
// order only fixes deterministic output, not correctness.
var Dirs = []string{
	"metadata",
	"docs",
	"data/raw/sequencing",
	"data/raw/imaging",
	"data/references",
	"data/processed",
	"src/preprocessing",
	"src/training",
	"src/evaluation",
	"src/analysis",
	"src/visualization",
	"src/utils",
	"models/checkpoints",
	"models/final_models",
	"results/figures",
	"results/tables",
	"results/reports",
	"notebooks",
	"configs",
	"environment",
	"temp",
	"archive",
}

// Files lists every zero-byte placeholder file of the skeleton, relative to
// the project root. README.md is not listed here: it always gets generated
// content and is written separately.
var Files = []string{
	"LICENSE",
	"metadata/project_metadata.txt",
	"metadata/sample_metadata.csv",
	"metadata/experiment_metadata.xlsx",
	"environment/requirements.txt",
	"environment/environment.yml",
}

// treeBody is the annotated skeleton below the project root line. It is the
// single canonical description consumed by both the dry-run renderer and the
// README generator, so the printed plan can never drift from what gets
// created.
const treeBody = `├── README.md                    # Project-level README
├── LICENSE                      # Empty placeholder license file
├── metadata/
│   ├── project_metadata.txt     # Project-level information (title, PI, funding)
│   ├── sample_metadata.csv      # Sample information (IDs, species, conditions)
│   └── experiment_metadata.xlsx # Experimental details (protocols, reagents, dates)
├── data/
│   ├── raw/
│   │   ├── sequencing/          # Raw sequencing data
│   │   └── imaging/             # Raw imaging data
│   ├── references/              # Reference datasets or external resources
│   └── processed/               # Cleaned or feature-extracted data
├── src/
│   ├── preprocessing/           # Scripts to prepare and clean raw data
│   ├── training/                # Model training scripts
│   ├── evaluation/              # Evaluation scripts
│   ├── analysis/                # Analysis scripts
│   ├── visualization/           # Visualization scripts
│   └── utils/                   # Utility functions
├── results/
│   ├── figures/                 # Plots and visualizations
│   ├── tables/                  # Metrics and summary tables
│   └── reports/                 # Reports or summaries of analysis
├── docs/                        # Supporting documentation and protocols
├── notebooks/                   # Jupyter or R notebooks
├── configs/                     # Hyperparameters, training configs, experiment settings
├── models/
│   ├── checkpoints/             # Intermediate saved model states
│   └── final_models/            # Final trained models
├── environment/
│   ├── environment.yml          # Environment file (empty placeholder)
│   └── requirements.txt         # Requirements file (empty placeholder)
├── temp/                        # Temporary files and cache
└── archive/                     # Backup of old scripts, data, or model versions
`

// Tree renders the canonical annotated skeleton for a project. Same name in,
// byte-identical text out.
func Tree(projectName string) string {
	return projectName + "/\n" + treeBody
}
