package uitree

// sampleDebugDescription mirrors what XCUITest prints for an application's
// debugDescription.
const sampleDebugDescription = `Attributes: Application, 0x600000c6c000, pid: 12345, label: 'Demo'
Element subtree:
 →Application, 0x600000c6c000, pid: 12345, label: 'Demo'
    Window (Main), 0x600000c6c1c0, {{0.0, 0.0}, {390.0, 844.0}}
      Other, 0x600000c6c2a0, {{0.0, 0.0}, {390.0, 844.0}}
        NavigationBar, 0x600000c6c380, {{0.0, 47.0}, {390.0, 44.0}}, identifier: 'Settings'
          Button, 0x600000c6c460, {{8.0, 47.0}, {70.0, 44.0}}, label: 'Back'
          StaticText, 0x600000c6c540, {{160.0, 58.0}, {70.0, 21.0}}, label: 'Settings'
        Switch, 0x600000c6c620, {{20.0, 120.0}, {350.0, 44.0}}, identifier: 'wifiSwitch', label: 'Wi-Fi', value: 1
        StaticText, 0x600000c6c700, {{20.0, 180.0}, {350.0, 40.0}}, label: 'Line one
Line two'
        TextField, 0x600000c6c7e0, {{20.0, 240.0}, {350.0, 44.0}}, identifier: 'emailField', placeholderValue: 'Email', value: user@example.com
        Button, 0x600000c6c8c0, {{20.0, 300.0}, {160.0, 44.0}}, identifier: 'cancelButton', label: 'Cancel'
        Button, 0x600000c6c9a0, {{210.0, 300.0}, {160.0, 44.0}}, identifier: 'saveButton', label: 'Save'
Path to element:
 →Application, 0x600000c6c000, pid: 12345, label: 'Demo'
Query chain:
 →Find: Target Application 'com.example.demo'
  Output: {
    Application, 0x600000c6c000, pid: 12345, label: 'Demo'
  }`

func intPtr(i int) *int { return &i }
