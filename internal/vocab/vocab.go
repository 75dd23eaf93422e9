package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary is the immutable name table driving widget and property
// recognition. It is read-only after construction, so one instance can be
// shared across concurrent file sessions.
type Vocabulary struct {
	widgets    map[string]bool
	containers map[string]bool
	reactive   map[string]bool
	collection map[string]bool
	injection  map[string]bool
}

// vocabularyFile is the on-disk YAML shape for retargeting the engine to a
// different UI framework.
type vocabularyFile struct {
	Widgets          []string `yaml:"widgets"`
	Containers       []string `yaml:"containers"`
	ReactiveWrappers []string `yaml:"reactive_wrappers"`
	Collections      []string `yaml:"collections"`
	InjectionMarkers []string `yaml:"injection_markers"`
}

// Default returns the built-in TornadoFX vocabulary.
func Default() *Vocabulary {
	return build(vocabularyFile{
		Containers: []string{
			"vbox", "hbox", "borderpane", "stackpane", "gridpane",
			"anchorpane", "flowpane", "scrollpane", "splitpane", "tabpane",
			"toolbar", "form", "fieldset", "field", "pane", "group",
		},
		Widgets: []string{
			"button", "label", "textfield", "textarea", "passwordfield",
			"checkbox", "radiobutton", "togglebutton", "combobox", "choicebox",
			"listview", "tableview", "treeview", "imageview", "slider",
			"spinner", "progressbar", "progressindicator", "hyperlink",
			"menubar", "menu", "menuitem", "separator", "datepicker",
			"tab", "text",
		},
		ReactiveWrappers: []string{
			"observable", "observableArrayList", "observableListOf",
			"observableSetOf", "observableMapOf",
			"SimpleStringProperty", "SimpleIntegerProperty",
			"SimpleBooleanProperty", "SimpleDoubleProperty",
			"SimpleLongProperty", "SimpleObjectProperty", "property",
		},
		Collections: []string{
			"listOf", "mutableListOf", "arrayListOf", "setOf", "mutableSetOf",
			"mapOf", "mutableMapOf", "hashMapOf", "arrayOf", "emptyList",
		},
		InjectionMarkers: []string{
			"inject", "singleAssign", "param", "di",
		},
	})
}

// Load reads a vocabulary override file. Missing sections fall back to the
// built-in defaults so a file can retarget only one concern.
func Load(path string) (*Vocabulary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var file vocabularyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	v := build(file)
	def := Default()
	if len(v.widgets) == 0 && len(v.containers) == 0 {
		v.widgets = def.widgets
		v.containers = def.containers
	}
	if len(v.reactive) == 0 {
		v.reactive = def.reactive
	}
	if len(v.collection) == 0 {
		v.collection = def.collection
	}
	if len(v.injection) == 0 {
		v.injection = def.injection
	}
	return v, nil
}

func build(file vocabularyFile) *Vocabulary {
	return &Vocabulary{
		widgets:    toSet(file.Widgets),
		containers: toSet(file.Containers),
		reactive:   toSet(file.ReactiveWrappers),
		collection: toSet(file.Collections),
		injection:  toSet(file.InjectionMarkers),
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// IsWidget reports whether name constructs any recognized control, container
// or leaf.
func (v *Vocabulary) IsWidget(name string) bool {
	return v.widgets[name] || v.containers[name]
}

// IsContainer reports whether name constructs a control that can hold
// children.
func (v *Vocabulary) IsContainer(name string) bool {
	return v.containers[name]
}

// IsReactiveWrapper reports whether name wraps a value or collection in an
// observer-notifying construct.
func (v *Vocabulary) IsReactiveWrapper(name string) bool {
	return v.reactive[name]
}

// IsCollectionCtor reports whether name is a plain collection constructor.
func (v *Vocabulary) IsCollectionCtor(name string) bool {
	return v.collection[name]
}

// IsInjectionMarker reports whether name is a dependency-injection delegate.
func (v *Vocabulary) IsInjectionMarker(name string) bool {
	return v.injection[name]
}
