package models

import "time"

// Patient represents the patients table.
// Besides demographics and billing flags it carries the laboratory
// measurements and the encoded fields consumed by the readmission model.
type Patient struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	Age       uint    `gorm:"not null" json:"age"`
	Gender    string  `gorm:"type:enum('male','female','other')" json:"gender"`
	Contact   string  `gorm:"size:50" json:"contact"`
	NHSNumber *string `gorm:"column:nhs_number;size:10;uniqueIndex" json:"nhs_number"`

	// Laboratory measurements kept on the record for clinical review
	Cholesterol                     *float64 `json:"cholesterol"`
	EosinophilCount                 *float64 `json:"eosinophil_count"`
	CreatinineEnzymaticMethod       *float64 `json:"creatinine_enzymatic_method"`
	Platelet                        *float64 `json:"platelet"`
	TotalBileAcid                   *float64 `json:"total_bile_acid"`
	MeanCorpuscularVolume           *float64 `json:"mean_corpuscular_volume"`
	IndirectBilirubin               *float64 `json:"indirect_bilirubin"`
	CKIsoenzymeToCK                 *float64 `gorm:"column:creatine_kinase_isoenzyme_to_creatine_kinase" json:"creatine_kinase_isoenzyme_to_creatine_kinase"`
	UricAcid                        *float64 `json:"uric_acid"`
	StdDevRedBloodCellDistWidth     *float64 `gorm:"column:std_dev_red_blood_cell_distribution_width" json:"std_dev_red_blood_cell_distribution_width"`
	AlkalinePhosphatase             *float64 `json:"alkaline_phosphatase"`
	NeutrophilRatio                 *float64 `json:"neutrophil_ratio"`
	HDLCholesterol                  *float64 `gorm:"column:high_density_lipoprotein_cholesterol" json:"high_density_lipoprotein_cholesterol"`
	HighSensitivityTroponin         *float64 `json:"high_sensitivity_troponin"`
	Chloride                        *float64 `json:"chloride"`
	GlomerularFiltrationRate        *float64 `json:"glomerular_filtration_rate"`
	CreatineKinaseIsoenzyme         *float64 `json:"creatine_kinase_isoenzyme"`
	CreatineKinase                  *float64 `json:"creatine_kinase"`
	ProthrombinActivity             *float64 `json:"prothrombin_activity"`
	BrainNatriureticPeptide         *float64 `json:"brain_natriuretic_peptide"`
	Triglyceride                    *float64 `json:"triglyceride"`
	MeanHemoglobinConcentration     *float64 `json:"mean_hemoglobin_concentration"`
	LymphocyteCount                 *float64 `json:"lymphocyte_count"`
	RedBloodCell                    *float64 `json:"red_blood_cell"`
	GlutamicOxaloaceticTransaminase *float64 `json:"glutamic_oxaloacetic_transaminase"`
	Nucleotidase                    *float64 `json:"nucleotidase"`
	LVEndDiastolicDiameter          *float64 `gorm:"column:left_ventricular_end_diastolic_diameter_lv" json:"left_ventricular_end_diastolic_diameter_lv"`
	DDimer                          *float64 `gorm:"column:d_dimer" json:"d_dimer"`
	Albumin                         *float64 `json:"albumin"`
	ThrombinTime                    *float64 `json:"thrombin_time"`

	// Encounter counts for the readmission model
	NumLabProcedures       int `gorm:"default:0" json:"num_lab_procedures"`
	NumMedications         int `gorm:"default:0" json:"num_medications"`
	TimeInHospital         int `gorm:"default:0" json:"time_in_hospital"`
	NumberInpatient        int `gorm:"default:0" json:"number_inpatient"`
	NumProcedures          int `gorm:"default:0" json:"num_procedures"`
	DischargeDispositionID int `gorm:"default:0" json:"discharge_disposition_id"`
	NumberDiagnoses        int `gorm:"default:0" json:"number_diagnoses"`
	AdmissionTypeID        int `gorm:"default:0" json:"admission_type_id"`
	AdmissionSourceID      int `gorm:"default:0" json:"admission_source_id"`
	NumberOutpatient       int `gorm:"default:0" json:"number_outpatient"`
	NumberEmergency        int `gorm:"default:0" json:"number_emergency"`

	// One-hot encoded fields for the readmission model
	GenderMale    bool `gorm:"column:gender_male;default:false" json:"gender_male"`
	RaceCaucasian bool `gorm:"column:race_caucasian;default:false" json:"race_caucasian"`

	Age7080  bool `gorm:"column:age_70_80;default:false" json:"age_70_80"`
	Age6070  bool `gorm:"column:age_60_70;default:false" json:"age_60_70"`
	Age8090  bool `gorm:"column:age_80_90;default:false" json:"age_80_90"`
	Age5060  bool `gorm:"column:age_50_60;default:false" json:"age_50_60"`
	Age4050  bool `gorm:"column:age_40_50;default:false" json:"age_40_50"`
	Age3040  bool `gorm:"column:age_30_40;default:false" json:"age_30_40"`
	Age90100 bool `gorm:"column:age_90_100;default:false" json:"age_90_100"`

	InsulinSteady bool `gorm:"column:insulin_steady;default:false" json:"insulin_steady"`
	InsulinNo     bool `gorm:"column:insulin_no;default:false" json:"insulin_no"`
	InsulinUp     bool `gorm:"column:insulin_up;default:false" json:"insulin_up"`

	ChangeNo bool `gorm:"column:change_no;default:false" json:"change_no"`

	MetforminSteady     bool `gorm:"column:metformin_steady;default:false" json:"metformin_steady"`
	MetforminNo         bool `gorm:"column:metformin_no;default:false" json:"metformin_no"`
	DiabetesMedYes      bool `gorm:"column:diabetes_med_yes;default:false" json:"diabetes_med_yes"`
	GlipizideNo         bool `gorm:"column:glipizide_no;default:false" json:"glipizide_no"`
	GlipizideSteady     bool `gorm:"column:glipizide_steady;default:false" json:"glipizide_steady"`
	GlyburideNo         bool `gorm:"column:glyburide_no;default:false" json:"glyburide_no"`
	GlyburideSteady     bool `gorm:"column:glyburide_steady;default:false" json:"glyburide_steady"`
	PioglitazoneNo      bool `gorm:"column:pioglitazone_no;default:false" json:"pioglitazone_no"`
	PioglitazoneSteady  bool `gorm:"column:pioglitazone_steady;default:false" json:"pioglitazone_steady"`
	RosiglitazoneNo     bool `gorm:"column:rosiglitazone_no;default:false" json:"rosiglitazone_no"`
	RosiglitazoneSteady bool `gorm:"column:rosiglitazone_steady;default:false" json:"rosiglitazone_steady"`
	GlimepirideNo       bool `gorm:"column:glimepiride_no;default:false" json:"glimepiride_no"`
	GlimepirideSteady   bool `gorm:"column:glimepiride_steady;default:false" json:"glimepiride_steady"`

	A1CResultGt8    bool `gorm:"column:a1c_result_gt8;default:false" json:"a1c_result_gt8"`
	A1CResultNorm   bool `gorm:"column:a1c_result_norm;default:false" json:"a1c_result_norm"`
	MaxGluSerumNorm bool `gorm:"column:max_glu_serum_norm;default:false" json:"max_glu_serum_norm"`

	// Primary/secondary/tertiary diagnosis code indicators
	Diag1428 bool `gorm:"column:diag_1_428;default:false" json:"diag_1_428"`
	Diag1414 bool `gorm:"column:diag_1_414;default:false" json:"diag_1_414"`
	Diag1410 bool `gorm:"column:diag_1_410;default:false" json:"diag_1_410"`
	Diag1486 bool `gorm:"column:diag_1_486;default:false" json:"diag_1_486"`
	Diag1786 bool `gorm:"column:diag_1_786;default:false" json:"diag_1_786"`
	Diag1491 bool `gorm:"column:diag_1_491;default:false" json:"diag_1_491"`
	Diag1427 bool `gorm:"column:diag_1_427;default:false" json:"diag_1_427"`
	Diag1276 bool `gorm:"column:diag_1_276;default:false" json:"diag_1_276"`
	Diag1584 bool `gorm:"column:diag_1_584;default:false" json:"diag_1_584"`

	Diag2276 bool `gorm:"column:diag_2_276;default:false" json:"diag_2_276"`
	Diag2428 bool `gorm:"column:diag_2_428;default:false" json:"diag_2_428"`
	Diag2427 bool `gorm:"column:diag_2_427;default:false" json:"diag_2_427"`
	Diag2496 bool `gorm:"column:diag_2_496;default:false" json:"diag_2_496"`
	Diag2599 bool `gorm:"column:diag_2_599;default:false" json:"diag_2_599"`
	Diag2403 bool `gorm:"column:diag_2_403;default:false" json:"diag_2_403"`
	Diag2250 bool `gorm:"column:diag_2_250;default:false" json:"diag_2_250"`
	Diag2707 bool `gorm:"column:diag_2_707;default:false" json:"diag_2_707"`
	Diag2411 bool `gorm:"column:diag_2_411;default:false" json:"diag_2_411"`
	Diag2585 bool `gorm:"column:diag_2_585;default:false" json:"diag_2_585"`
	Diag2425 bool `gorm:"column:diag_2_425;default:false" json:"diag_2_425"`

	Diag3250 bool `gorm:"column:diag_3_250;default:false" json:"diag_3_250"`
	Diag3276 bool `gorm:"column:diag_3_276;default:false" json:"diag_3_276"`
	Diag3428 bool `gorm:"column:diag_3_428;default:false" json:"diag_3_428"`
	Diag3401 bool `gorm:"column:diag_3_401;default:false" json:"diag_3_401"`
	Diag3427 bool `gorm:"column:diag_3_427;default:false" json:"diag_3_427"`
	Diag3414 bool `gorm:"column:diag_3_414;default:false" json:"diag_3_414"`
	Diag3496 bool `gorm:"column:diag_3_496;default:false" json:"diag_3_496"`
	Diag3585 bool `gorm:"column:diag_3_585;default:false" json:"diag_3_585"`
	Diag3403 bool `gorm:"column:diag_3_403;default:false" json:"diag_3_403"`
	Diag3599 bool `gorm:"column:diag_3_599;default:false" json:"diag_3_599"`

	// Billing flags
	InsuranceStatus bool `gorm:"default:false" json:"insurance_status"`
	Handicapped     bool `gorm:"default:false" json:"handicapped"`

	IsArchived bool      `gorm:"default:false" json:"is_archived"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// FeatureVector returns the 70 model inputs in the exact column order the
// readmission model was trained with. The order must never change without
// retraining the model.
func (p *Patient) FeatureVector() []float64 {
	return []float64{
		float64(p.NumLabProcedures),
		float64(p.NumMedications),
		float64(p.TimeInHospital),
		float64(p.NumberInpatient),
		float64(p.NumProcedures),
		float64(p.DischargeDispositionID),
		float64(p.NumberDiagnoses),
		float64(p.AdmissionTypeID),
		float64(p.AdmissionSourceID),
		boolFeature(p.GenderMale),
		float64(p.NumberOutpatient),
		float64(p.NumberEmergency),
		boolFeature(p.RaceCaucasian),
		boolFeature(p.Age7080),
		boolFeature(p.Age6070),
		boolFeature(p.InsulinSteady),
		boolFeature(p.ChangeNo),
		boolFeature(p.Age8090),
		boolFeature(p.InsulinNo),
		boolFeature(p.Age5060),
		boolFeature(p.MetforminSteady),
		boolFeature(p.MetforminNo),
		boolFeature(p.DiabetesMedYes),
		boolFeature(p.GlipizideNo),
		boolFeature(p.Age4050),
		boolFeature(p.InsulinUp),
		boolFeature(p.Diag2276),
		boolFeature(p.A1CResultGt8),
		boolFeature(p.GlyburideNo),
		boolFeature(p.GlipizideSteady),
		boolFeature(p.Diag3250),
		boolFeature(p.Diag1428),
		boolFeature(p.Diag2428),
		boolFeature(p.GlyburideSteady),
		boolFeature(p.Diag3276),
		boolFeature(p.Diag2427),
		boolFeature(p.Diag3428),
		boolFeature(p.Diag3401),
		boolFeature(p.Diag3427),
		boolFeature(p.A1CResultNorm),
		boolFeature(p.PioglitazoneNo),
		boolFeature(p.PioglitazoneSteady),
		boolFeature(p.RosiglitazoneNo),
		boolFeature(p.Diag1414),
		boolFeature(p.RosiglitazoneSteady),
		boolFeature(p.Diag2496),
		boolFeature(p.Diag3414),
		boolFeature(p.Diag3496),
		boolFeature(p.Diag2599),
		boolFeature(p.Age3040),
		boolFeature(p.Diag1410),
		boolFeature(p.Diag2403),
		boolFeature(p.GlimepirideNo),
		boolFeature(p.Diag2250),
		boolFeature(p.Diag1486),
		boolFeature(p.Diag3585),
		boolFeature(p.GlimepirideSteady),
		boolFeature(p.Diag3403),
		boolFeature(p.Age90100),
		boolFeature(p.Diag1786),
		boolFeature(p.Diag3599),
		boolFeature(p.Diag1491),
		boolFeature(p.Diag1427),
		boolFeature(p.Diag2707),
		boolFeature(p.Diag1276),
		boolFeature(p.Diag2411),
		boolFeature(p.Diag1584),
		boolFeature(p.Diag2585),
		boolFeature(p.MaxGluSerumNorm),
		boolFeature(p.Diag2425),
	}
}

// FeatureCount is the width of the readmission model input
const FeatureCount = 70
