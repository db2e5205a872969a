/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package cloudinit

const UserDataGoTmpl string = `#cloud-config
hostname: {{ .Hostname }}
{{- if .Domain }}
fqdn: {{ .Domain }}
{{- end }}
manage_etc_hosts: true
chpasswd:
  expire: false
  users:
    - name: root
      password: {{ sha512 .RootPassword }}
      type: HASH
write_files:
  - path: /etc/weblets/{{ .Kind | lower }}.env
    owner: root:root
    permissions: "0600"
    content: |
{{- range $key, $value := .Env }}
      {{ $key }}={{ $value | quote }}
{{- end }}
`

const MetaDataGoTmpl string = `instance-id: {{ .InstanceID }}
local-hostname: {{ .Hostname }}
`
